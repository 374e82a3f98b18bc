package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/hostizzy/resiq/internal/models"
	"github.com/hostizzy/resiq/internal/storage"
)

// CreateProperty links a property to its owner.
func (s *SQLiteStore) CreateProperty(ctx context.Context, propertyID, ownerID, name string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO properties (id, owner_id, name) VALUES (?, ?, ?)",
		propertyID, ownerID, name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

// CreateBooking persists a booking.
func (s *SQLiteStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (booking_id, property_id, check_in, status, total_amount, commission_amount)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.PropertyID, formatDate(b.CheckIn), string(b.Status),
		b.TotalAmount.String(), b.CommissionAmount.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// CreatePayment persists a payment.
func (s *SQLiteStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, booking_id, amount, payment_recipient, payment_date)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.BookingID, p.Amount.String(), p.Recipient, formatDate(p.PaymentDate),
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// ListPropertyIDsByOwner returns the IDs of the owner's properties.
func (s *SQLiteStore) ListPropertyIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM properties WHERE owner_id = ? ORDER BY id",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	return ids, nil
}

// ListBookingsForProperties returns all bookings on the given properties.
func (s *SQLiteStore) ListBookingsForProperties(ctx context.Context, propertyIDs []string) ([]models.Booking, error) {
	if len(propertyIDs) == 0 {
		return []models.Booking{}, nil
	}

	bookings := []models.Booking{}
	for _, ids := range chunk(propertyIDs, maxInParams) {
		page, err := s.listBookings(ctx, ids)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, page...)
	}
	return bookings, nil
}

func (s *SQLiteStore) listBookings(ctx context.Context, propertyIDs []string) ([]models.Booking, error) {
	in, args := inClause(propertyIDs)
	rows, err := s.db.QueryContext(ctx,
		`SELECT booking_id, property_id, check_in, status, total_amount, commission_amount
		 FROM bookings WHERE property_id IN `+in+` ORDER BY check_in DESC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var (
			b                                 models.Booking
			status                            string
			checkIn, totalAmount, commission sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.PropertyID, &checkIn, &status, &totalAmount, &commission); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		b.Status = models.BookingStatus(status)
		b.CheckIn = storage.ParseDate(checkIn.String, "check_in", b.ID, s.loc)
		b.TotalAmount = storage.ParseAmount(totalAmount.String, "total_amount", b.ID)
		b.CommissionAmount = storage.ParseAmount(commission.String, "commission_amount", b.ID)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}

// ListPaymentsForBookings returns all payments tied to the given bookings.
func (s *SQLiteStore) ListPaymentsForBookings(ctx context.Context, bookingIDs []string) ([]models.Payment, error) {
	if len(bookingIDs) == 0 {
		return []models.Payment{}, nil
	}

	payments := []models.Payment{}
	for _, ids := range chunk(bookingIDs, maxInParams) {
		page, err := s.listPayments(ctx, ids)
		if err != nil {
			return nil, err
		}
		payments = append(payments, page...)
	}
	return payments, nil
}

func (s *SQLiteStore) listPayments(ctx context.Context, bookingIDs []string) ([]models.Payment, error) {
	in, args := inClause(bookingIDs)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, booking_id, amount, payment_recipient, payment_date
		 FROM payments WHERE booking_id IN `+in+` ORDER BY payment_date`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var (
			p                          models.Payment
			amount, recipient, paidOn sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.BookingID, &amount, &recipient, &paidOn); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		p.Amount = storage.ParseAmount(amount.String, "amount", p.ID)
		p.Recipient = recipient.String
		p.Party = models.ClassifyRecipient(p.Recipient)
		if p.Party.Ambiguous() {
			slog.Warn("Payment recipient matches both owner and hostizzy",
				"payment_id", p.ID,
				"recipient", p.Recipient,
			)
		}
		if paidOn.Valid {
			p.PaymentDate = storage.ParseDate(paidOn.String, "payment_date", p.ID, s.loc)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

func formatDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.DateOnly)
}
