// Package ledger reconciles owner settlements against the data sources and
// records settlement and payout decisions.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/hostizzy/resiq/internal/calculator"
	"github.com/hostizzy/resiq/internal/calendar"
	"github.com/hostizzy/resiq/internal/models"
)

// MinimumPayout is the smallest amount an owner may request.
var MinimumPayout = decimal.NewFromInt(100)

// Ledger orchestrates settlement reconciliation for one owner at a time.
type Ledger struct {
	repo    Repository
	loc     *time.Location
	timeout time.Duration
	now     func() time.Time

	// payouts serializes the balance check and insert of each owner's
	// payout requests.
	payouts ownerLocks
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLocation sets the calendar used for month bucketing.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) { l.loc = loc }
}

// WithSourceTimeout bounds every individual repository call.
func WithSourceTimeout(d time.Duration) Option {
	return func(l *Ledger) { l.timeout = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates a Ledger over repo.
func New(repo Repository, opts ...Option) *Ledger {
	l := &Ledger{
		repo:    repo,
		loc:     time.UTC,
		timeout: 10 * time.Second,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Window is the settlement window as of now.
func (l *Ledger) Window() calendar.Range {
	return calendar.SettlementWindow(l.now(), l.loc)
}

// Settlements reconciles every month from the settlement anchor through the
// current month. Records are oldest first unless descending is set.
func (l *Ledger) Settlements(ctx context.Context, ownerID string, descending bool) ([]models.SettlementRecord, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	window := l.Window()
	if window.Len() == 0 {
		return []models.SettlementRecord{}, nil
	}

	bookings, err := l.ownerBookings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	bookingIDs := make([]string, 0, len(bookings))
	undated := 0
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		if b.CheckIn.IsZero() {
			undated++
			continue
		}
		bookingIDs = append(bookingIDs, b.ID)
	}
	if undated > 0 {
		slog.Warn("Bookings without a usable check-in left out of settlement",
			"owner_id", ownerID,
			"count", undated,
		)
	}

	// Payments and completion flags are independent once the booking ids
	// are known.
	var (
		payments []models.Payment
		statuses []models.SettlementStatusEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cctx, cancel := l.sourceContext(gctx)
		defer cancel()
		var err error
		payments, err = l.repo.ListPaymentsForBookings(cctx, bookingIDs)
		if err != nil {
			return fmt.Errorf("%w: list payments: %w", ErrSourceUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		cctx, cancel := l.sourceContext(gctx)
		defer cancel()
		var err error
		statuses, err = l.repo.ListSettlementStatuses(cctx, ownerID, window.From.Key(), window.To.Key())
		if err != nil {
			return fmt.Errorf("%w: list settlement statuses: %w", ErrSourceUnavailable, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := calculator.CalculateSettlements(calculator.SettlementInput{
		OwnerID:  ownerID,
		Bookings: bookings,
		Payments: payments,
		Statuses: statuses,
		Window:   window,
		Location: l.loc,
	})

	slog.Debug("Settlements calculated",
		"owner_id", ownerID,
		"bookings_count", len(bookings),
		"payments_count", len(payments),
		"months", len(records),
	)

	if descending {
		return calculator.Reverse(records), nil
	}
	return records, nil
}

// MarkSettlement records that the owner's settlement for month has been
// handled. Marking the same month again overwrites the earlier entry.
// The month's net settlement is not checked.
func (l *Ledger) MarkSettlement(ctx context.Context, ownerID string, month calendar.YearMonth, settlementType models.SettlementType) (*models.SettlementStatusEntry, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	if !month.Valid() {
		return nil, ErrInvalidMonth
	}
	if month.Before(calendar.SettlementAnchor) {
		return nil, ErrMonthBeforeAnchor
	}
	if !settlementType.Valid() {
		return nil, ErrInvalidSettlementType
	}

	entry := &models.SettlementStatusEntry{
		OwnerID:         ownerID,
		SettlementMonth: month.Key(),
		Status:          models.StatusCompleted,
		CompletedAt:     l.now().UTC(),
		SettlementType:  settlementType,
	}

	cctx, cancel := l.sourceContext(ctx)
	defer cancel()
	if err := l.repo.UpsertSettlementStatus(cctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarkFailed, err)
	}

	slog.Info("Settlement marked",
		"owner_id", ownerID,
		"month", entry.SettlementMonth,
		"settlement_type", settlementType,
	)
	return entry, nil
}

// ownerBookings resolves the owner's properties and lists their bookings.
func (l *Ledger) ownerBookings(ctx context.Context, ownerID string) ([]models.Booking, error) {
	cctx, cancel := l.sourceContext(ctx)
	defer cancel()
	propertyIDs, err := l.repo.ListPropertyIDsByOwner(cctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list properties: %w", ErrSourceUnavailable, err)
	}
	if len(propertyIDs) == 0 {
		return []models.Booking{}, nil
	}

	cctx, cancel = l.sourceContext(ctx)
	defer cancel()
	bookings, err := l.repo.ListBookingsForProperties(cctx, propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: list bookings: %w", ErrSourceUnavailable, err)
	}
	return bookings, nil
}

func (l *Ledger) sourceContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.timeout)
}
