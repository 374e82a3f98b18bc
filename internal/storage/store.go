// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/hostizzy/resiq/internal/models"
)

// PropertyDirectory resolves which properties an owner holds.
type PropertyDirectory interface {
	// ListPropertyIDsByOwner returns the IDs of the owner's properties.
	// An owner without properties yields an empty slice, not an error.
	ListPropertyIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}

// BookingSource reads reservations.
type BookingSource interface {
	// ListBookingsForProperties returns every booking on the given properties,
	// cancelled ones included. Amounts that cannot be parsed come back as zero
	// and unparseable check-in dates as the zero time.
	ListBookingsForProperties(ctx context.Context, propertyIDs []string) ([]models.Booking, error)
}

// PaymentSource reads payments.
type PaymentSource interface {
	// ListPaymentsForBookings returns every payment tied to the given bookings,
	// with Party already classified from the recipient tag.
	ListPaymentsForBookings(ctx context.Context, bookingIDs []string) ([]models.Payment, error)
}

// SettlementStatusStore persists settlement completion flags.
type SettlementStatusStore interface {
	// GetSettlementStatus returns the entry for one owner and month key.
	// Returns nil and no error if the month was never marked.
	GetSettlementStatus(ctx context.Context, ownerID, monthKey string) (*models.SettlementStatusEntry, error)

	// ListSettlementStatuses returns the owner's entries with
	// fromKey <= month key <= toKey in one query.
	ListSettlementStatuses(ctx context.Context, ownerID, fromKey, toKey string) ([]models.SettlementStatusEntry, error)

	// UpsertSettlementStatus inserts the entry or overwrites the existing one
	// for the same (OwnerID, SettlementMonth).
	UpsertSettlementStatus(ctx context.Context, entry *models.SettlementStatusEntry) error
}

// PayoutStore persists owner payout requests.
type PayoutStore interface {
	// CreatePayoutRequest persists a new request.
	// The ID and RequestedAt fields are populated by the store when empty.
	CreatePayoutRequest(ctx context.Context, req *models.PayoutRequest) error

	// ListPayoutRequests returns the owner's requests, newest first.
	ListPayoutRequests(ctx context.Context, ownerID string) ([]models.PayoutRequest, error)
}

// BankDetailsStore persists where owners want payouts sent.
type BankDetailsStore interface {
	// GetBankDetails returns nil and no error if the owner never saved any.
	GetBankDetails(ctx context.Context, ownerID string) (*models.BankDetails, error)

	// UpsertBankDetails inserts or replaces the owner's details.
	UpsertBankDetails(ctx context.Context, details *models.BankDetails) error
}

// Store defines the full set of storage operations used by the service.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the ledger or service layers.
type Store interface {
	PropertyDirectory
	BookingSource
	PaymentSource
	SettlementStatusStore
	PayoutStore
	BankDetailsStore

	// Close releases any resources held by the store.
	Close() error
}
