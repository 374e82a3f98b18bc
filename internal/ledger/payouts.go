package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/hostizzy/resiq/internal/calculator"
	"github.com/hostizzy/resiq/internal/models"
)

// RevenueSummary totals the owner's bookings and returns the balance still
// available for payout requests.
func (l *Ledger) RevenueSummary(ctx context.Context, ownerID string) (models.RevenueSummary, decimal.Decimal, error) {
	if ownerID == "" {
		return models.RevenueSummary{}, decimal.Zero, ErrOwnerRequired
	}

	var (
		bookings []models.Booking
		payouts  []models.PayoutRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = l.ownerBookings(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		cctx, cancel := l.sourceContext(gctx)
		defer cancel()
		var err error
		payouts, err = l.repo.ListPayoutRequests(cctx, ownerID)
		if err != nil {
			return fmt.Errorf("%w: list payout requests: %w", ErrSourceUnavailable, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.RevenueSummary{}, decimal.Zero, err
	}

	summary := calculator.SummarizeRevenue(bookings)
	return summary, calculator.AvailableBalance(summary, payouts), nil
}

// RequestPayout files a pending payout request after checking the minimum
// amount, the method, the available balance and the owner's saved payout
// details. Requests for the same owner are serialized so concurrent calls
// cannot overdraw the balance.
func (l *Ledger) RequestPayout(ctx context.Context, ownerID string, amount decimal.Decimal, method models.PayoutMethod, notes string) (*models.PayoutRequest, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	if !method.Valid() {
		return nil, ErrInvalidPayoutMethod
	}
	if amount.LessThan(MinimumPayout) {
		return nil, ErrPayoutBelowMinimum
	}

	unlock := l.payouts.lock(ownerID)
	defer unlock()

	_, balance, err := l.RevenueSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(balance) {
		slog.Warn("Payout request exceeds balance",
			"owner_id", ownerID,
			"amount", amount.String(),
			"balance", balance.String(),
		)
		return nil, ErrPayoutExceedsBalance
	}

	details, err := l.BankDetails(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !details.CanReceive(method) {
		slog.Warn("Payout details missing",
			"owner_id", ownerID,
			"method", method,
		)
		return nil, ErrPayoutDetailsMissing
	}

	req := &models.PayoutRequest{
		OwnerID:     ownerID,
		Amount:      amount,
		Method:      method,
		OwnerNotes:  notes,
		Status:      models.PayoutPending,
		RequestedAt: l.now().Unix(),
	}

	cctx, cancel := l.sourceContext(ctx)
	defer cancel()
	if err := l.repo.CreatePayoutRequest(cctx, req); err != nil {
		return nil, fmt.Errorf("could not create payout request: %w", err)
	}

	slog.Info("Payout requested",
		"owner_id", ownerID,
		"payout_id", req.ID,
		"amount", amount.String(),
		"method", method,
	)
	return req, nil
}

// PayoutRequests lists the owner's requests, newest first.
func (l *Ledger) PayoutRequests(ctx context.Context, ownerID string) ([]models.PayoutRequest, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	cctx, cancel := l.sourceContext(ctx)
	defer cancel()
	payouts, err := l.repo.ListPayoutRequests(cctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list payout requests: %w", ErrSourceUnavailable, err)
	}
	return payouts, nil
}

// BankDetails returns the owner's saved payout details, or nil when none
// have been saved.
func (l *Ledger) BankDetails(ctx context.Context, ownerID string) (*models.BankDetails, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	cctx, cancel := l.sourceContext(ctx)
	defer cancel()
	details, err := l.repo.GetBankDetails(cctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: get bank details: %w", ErrSourceUnavailable, err)
	}
	return details, nil
}

// SaveBankDetails replaces the owner's payout details. An account number and
// IFSC code are required; the IFSC code is stored upper-cased.
func (l *Ledger) SaveBankDetails(ctx context.Context, ownerID string, details models.BankDetails) (*models.BankDetails, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	details.Normalize()
	if details.AccountNumber == "" || details.IFSC == "" {
		return nil, ErrBankDetailsIncomplete
	}
	details.OwnerID = ownerID
	details.UpdatedAt = l.now().UTC()

	cctx, cancel := l.sourceContext(ctx)
	defer cancel()
	if err := l.repo.UpsertBankDetails(cctx, &details); err != nil {
		return nil, fmt.Errorf("could not save bank details: %w", err)
	}

	slog.Info("Bank details saved", "owner_id", ownerID, "has_upi", details.UPIID != "")
	return &details, nil
}
