// Package postgres implements storage.Store on the hosted Supabase Postgres
// database through gorm.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hostizzy/resiq/internal/models"
	"github.com/hostizzy/resiq/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store reads reservations and payments owned by the portal and keeps
// settlement flags and payout requests alongside them.
type Store struct {
	db  *gorm.DB
	loc *time.Location
}

// Open connects to the database at dsn. Dates are interpreted in loc.
func Open(dsn string, loc *time.Location) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return New(db, loc), nil
}

// New wraps an existing gorm handle.
func New(db *gorm.DB, loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{db: db, loc: loc}
}

// Migrate creates the tables this service owns. Reservations, payments and
// properties belong to the portal and are never migrated from here.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&settlementRow{}, &payoutRow{})
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ListPropertyIDsByOwner returns the IDs of the owner's properties.
func (s *Store) ListPropertyIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	ids := []string{}
	err := s.db.WithContext(ctx).
		Model(&propertyRow{}).
		Where("owner_id = ?", ownerID).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return ids, nil
}

// ListBookingsForProperties returns all reservations on the given properties.
func (s *Store) ListBookingsForProperties(ctx context.Context, propertyIDs []string) ([]models.Booking, error) {
	if len(propertyIDs) == 0 {
		return []models.Booking{}, nil
	}

	var rows []reservationRow
	if err := bookingsQuery(s.db.WithContext(ctx), propertyIDs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(rows))
	for _, r := range rows {
		b := models.Booking{
			ID:               r.BookingID,
			PropertyID:       r.PropertyID,
			Status:           models.BookingStatus(r.Status),
			TotalAmount:      storage.ParseAmount(r.TotalAmount.String, "total_amount", r.BookingID),
			CommissionAmount: storage.ParseAmount(r.HostizzyRevenue.String, "hostizzy_revenue", r.BookingID),
		}
		if r.CheckIn.Valid {
			b.CheckIn = calendarDate(r.CheckIn.Time, s.loc)
		} else {
			slog.Warn("Missing date", "field", "check_in", "record_id", r.BookingID)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// ListPaymentsForBookings returns all payments tied to the given bookings.
func (s *Store) ListPaymentsForBookings(ctx context.Context, bookingIDs []string) ([]models.Payment, error) {
	if len(bookingIDs) == 0 {
		return []models.Payment{}, nil
	}

	var rows []paymentRow
	err := s.db.WithContext(ctx).
		Where("booking_id IN ?", bookingIDs).
		Order("payment_date").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]models.Payment, 0, len(rows))
	for _, r := range rows {
		p := models.Payment{
			ID:        r.ID,
			BookingID: r.BookingID,
			Amount:    storage.ParseAmount(r.Amount.String, "amount", r.ID),
			Recipient: r.PaymentRecipient.String,
		}
		p.Party = models.ClassifyRecipient(p.Recipient)
		if p.Party.Ambiguous() {
			slog.Warn("Payment recipient matches both owner and hostizzy",
				"payment_id", p.ID,
				"recipient", p.Recipient,
			)
		}
		if r.PaymentDate.Valid {
			p.PaymentDate = calendarDate(r.PaymentDate.Time, s.loc)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// GetSettlementStatus returns nil and no error when the month was never marked.
func (s *Store) GetSettlementStatus(ctx context.Context, ownerID, monthKey string) (*models.SettlementStatusEntry, error) {
	var row settlementRow
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND settlement_month = ?", ownerID, monthKey).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement status: %w", err)
	}
	entry := row.toModel()
	return &entry, nil
}

// ListSettlementStatuses returns the owner's entries within [fromKey, toKey].
func (s *Store) ListSettlementStatuses(ctx context.Context, ownerID, fromKey, toKey string) ([]models.SettlementStatusEntry, error) {
	var rows []settlementRow
	if err := statusRangeQuery(s.db.WithContext(ctx), ownerID, fromKey, toKey).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list settlement statuses: %w", err)
	}

	entries := make([]models.SettlementStatusEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toModel())
	}
	return entries, nil
}

// UpsertSettlementStatus inserts or overwrites the entry for (owner, month).
func (s *Store) UpsertSettlementStatus(ctx context.Context, entry *models.SettlementStatusEntry) error {
	row := settlementRow{
		OwnerID:         entry.OwnerID,
		SettlementMonth: entry.SettlementMonth,
		Status:          entry.Status,
		CompletedAt:     entry.CompletedAt,
		SettlementType:  string(entry.SettlementType),
	}
	if err := upsertStatus(s.db.WithContext(ctx), &row).Error; err != nil {
		return fmt.Errorf("failed to upsert settlement status: %w", err)
	}
	return nil
}

// CreatePayoutRequest persists a new payout request.
func (s *Store) CreatePayoutRequest(ctx context.Context, req *models.PayoutRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.RequestedAt == 0 {
		req.RequestedAt = time.Now().Unix()
	}

	row := payoutRow{
		ID:           req.ID,
		OwnerID:      req.OwnerID,
		Amount:       req.Amount.String(),
		PayoutMethod: string(req.Method),
		OwnerNotes:   sql.NullString{String: req.OwnerNotes, Valid: req.OwnerNotes != ""},
		Status:       string(req.Status),
		RequestedAt:  time.Unix(req.RequestedAt, 0).UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert payout request: %w", err)
	}
	return nil
}

// ListPayoutRequests returns the owner's payout requests, newest first.
func (s *Store) ListPayoutRequests(ctx context.Context, ownerID string) ([]models.PayoutRequest, error) {
	var rows []payoutRow
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("requested_at DESC").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payout requests: %w", err)
	}

	payouts := make([]models.PayoutRequest, 0, len(rows))
	for _, r := range rows {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse payout amount for %s: %w", r.ID, err)
		}
		payouts = append(payouts, models.PayoutRequest{
			ID:          r.ID,
			OwnerID:     r.OwnerID,
			Amount:      amount,
			Method:      models.PayoutMethod(r.PayoutMethod),
			OwnerNotes:  r.OwnerNotes.String,
			Status:      models.PayoutStatus(r.Status),
			RequestedAt: r.RequestedAt.Unix(),
		})
	}
	return payouts, nil
}

func bookingsQuery(tx *gorm.DB, propertyIDs []string) *gorm.DB {
	return tx.Model(&reservationRow{}).
		Where("property_id IN ?", propertyIDs).
		Order("check_in DESC")
}

func statusRangeQuery(tx *gorm.DB, ownerID, fromKey, toKey string) *gorm.DB {
	return tx.Model(&settlementRow{}).
		Where("owner_id = ? AND settlement_month BETWEEN ? AND ?", ownerID, fromKey, toKey).
		Order("settlement_month")
}

func upsertStatus(tx *gorm.DB, row *settlementRow) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "settlement_month"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "completed_at", "settlement_type"}),
	}).Create(row)
}

func (r settlementRow) toModel() models.SettlementStatusEntry {
	return models.SettlementStatusEntry{
		OwnerID:         r.OwnerID,
		SettlementMonth: r.SettlementMonth,
		Status:          r.Status,
		CompletedAt:     r.CompletedAt,
		SettlementType:  models.SettlementType(r.SettlementType),
	}
}

// calendarDate keeps the year, month and day of a Postgres date column and
// pins them to loc. The driver returns dates as UTC midnight.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
