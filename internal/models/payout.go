package models

import "github.com/shopspring/decimal"

// PayoutMethod is how an owner wants to be paid.
type PayoutMethod string

const (
	PayoutBankTransfer PayoutMethod = "bank_transfer"
	PayoutUPI          PayoutMethod = "upi"
)

// Valid reports whether m is a supported payout method.
func (m PayoutMethod) Valid() bool {
	return m == PayoutBankTransfer || m == PayoutUPI
}

// PayoutStatus is the processing state of a payout request.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutApproved  PayoutStatus = "approved"
	PayoutCompleted PayoutStatus = "completed"
	PayoutRejected  PayoutStatus = "rejected"
)

// PayoutRequest represents an owner's request to withdraw earnings.
type PayoutRequest struct {
	// ID is the unique identifier for the request (UUID format).
	ID string

	OwnerID    string
	Amount     decimal.Decimal
	Method     PayoutMethod
	OwnerNotes string
	Status     PayoutStatus

	// RequestedAt is the Unix timestamp when the request was submitted.
	RequestedAt int64
}

// RevenueSummary is an owner's lifetime revenue across non-cancelled bookings.
type RevenueSummary struct {
	TotalRevenue       decimal.Decimal
	HostizzyCommission decimal.Decimal

	// NetEarnings is TotalRevenue - HostizzyCommission.
	NetEarnings  decimal.Decimal
	BookingCount int
}
