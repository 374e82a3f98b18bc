package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementType records how a month's settlement was handled.
type SettlementType string

const (
	// SettlementPayoutReceived: the owner received the payout owed to them.
	SettlementPayoutReceived SettlementType = "payout_received"
	// SettlementPaymentDone: the owner paid what they owed Hostizzy.
	SettlementPaymentDone SettlementType = "payment_done"
)

// Valid reports whether t is a known settlement type.
func (t SettlementType) Valid() bool {
	return t == SettlementPayoutReceived || t == SettlementPaymentDone
}

// StatusCompleted is the only status written by the settlement marker.
const StatusCompleted = "completed"

// SettlementStatusEntry is the persisted completion flag for one owner and month.
// It is upserted on (OwnerID, SettlementMonth) and never deleted.
type SettlementStatusEntry struct {
	OwnerID string

	// SettlementMonth is the month key, "YYYY-MM".
	SettlementMonth string

	Status         string
	CompletedAt    time.Time
	SettlementType SettlementType
}

// SettlementRecord is the derived reconciliation of one calendar month.
type SettlementRecord struct {
	Year  int
	Month int

	// TotalCommission sums CommissionAmount over the month's non-cancelled bookings.
	TotalCommission decimal.Decimal

	// PaymentsToOwner and PaymentsToHostizzy sum the payments of those bookings,
	// whatever month the payment itself was made in.
	PaymentsToOwner    decimal.Decimal
	PaymentsToHostizzy decimal.Decimal

	// NetSettlement is PaymentsToHostizzy - TotalCommission.
	// Positive: Hostizzy owes the owner. Negative: the owner owes Hostizzy.
	NetSettlement decimal.Decimal

	IsCompleted    bool
	CompletedAt    time.Time
	SettlementType SettlementType
}
