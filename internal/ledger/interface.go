package ledger

import (
	"context"

	"github.com/hostizzy/resiq/internal/models"
)

// Repository is the data the ledger reads and writes. The ledger depends on
// this interface, not on a concrete storage backend; storage.Store satisfies it.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go Repository
type Repository interface {
	ListPropertyIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	ListBookingsForProperties(ctx context.Context, propertyIDs []string) ([]models.Booking, error)
	ListPaymentsForBookings(ctx context.Context, bookingIDs []string) ([]models.Payment, error)
	ListSettlementStatuses(ctx context.Context, ownerID, fromKey, toKey string) ([]models.SettlementStatusEntry, error)
	UpsertSettlementStatus(ctx context.Context, entry *models.SettlementStatusEntry) error
	CreatePayoutRequest(ctx context.Context, req *models.PayoutRequest) error
	ListPayoutRequests(ctx context.Context, ownerID string) ([]models.PayoutRequest, error)
	GetBankDetails(ctx context.Context, ownerID string) (*models.BankDetails, error)
	UpsertBankDetails(ctx context.Context, details *models.BankDetails) error
}
