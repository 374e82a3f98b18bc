// Package rpc defines the SettlementService wire messages and the Connect
// handler and client constructors for them.
package rpc

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is one month of an owner's settlement ledger.
type Settlement struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	MonthKey           string          `json:"month_key"`
	TotalCommission    decimal.Decimal `json:"total_commission"`
	PaymentsToOwner    decimal.Decimal `json:"payments_to_owner"`
	PaymentsToHostizzy decimal.Decimal `json:"payments_to_hostizzy"`
	NetSettlement      decimal.Decimal `json:"net_settlement"`
	IsCompleted        bool            `json:"is_completed"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	SettlementType     string          `json:"settlement_type,omitempty"`
}

type ListSettlementsRequest struct {
	Descending bool `json:"descending"`
}

type ListSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

// SettlementStatus is the completion flag written by MarkSettlement.
type SettlementStatus struct {
	OwnerID         string    `json:"owner_id"`
	SettlementMonth string    `json:"settlement_month"`
	Status          string    `json:"status"`
	CompletedAt     time.Time `json:"completed_at"`
	SettlementType  string    `json:"settlement_type"`
}

type MarkSettlementRequest struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	SettlementType string `json:"settlement_type"`
}

type MarkSettlementResponse struct {
	Entry *SettlementStatus `json:"entry"`
}

type RevenueSummary struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	HostizzyCommission decimal.Decimal `json:"hostizzy_commission"`
	NetEarnings        decimal.Decimal `json:"net_earnings"`
	BookingCount       int             `json:"booking_count"`
}

type GetRevenueSummaryRequest struct{}

type GetRevenueSummaryResponse struct {
	Summary          *RevenueSummary `json:"summary"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

// Payout is a payout request as shown to its owner.
type Payout struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	OwnerNotes  string          `json:"owner_notes,omitempty"`
	Status      string          `json:"status"`
	RequestedAt int64           `json:"requested_at"`
}

type RequestPayoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Notes  string          `json:"notes,omitempty"`
}

type RequestPayoutResponse struct {
	Payout *Payout `json:"payout"`
}

type ListPayoutRequestsRequest struct{}

type ListPayoutRequestsResponse struct {
	Payouts []*Payout `json:"payouts"`
}

// BankDetails is where an owner's payouts are sent.
type BankDetails struct {
	AccountHolderName string     `json:"account_holder_name,omitempty"`
	AccountNumber     string     `json:"bank_account_number"`
	IFSC              string     `json:"bank_ifsc"`
	BankName          string     `json:"bank_name,omitempty"`
	Branch            string     `json:"bank_branch,omitempty"`
	UPIID             string     `json:"upi_id,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type GetBankDetailsRequest struct{}

// GetBankDetailsResponse carries a nil Details when none have been saved.
type GetBankDetailsResponse struct {
	Details *BankDetails `json:"details"`
}

type SaveBankDetailsRequest struct {
	Details *BankDetails `json:"details"`
}

type SaveBankDetailsResponse struct {
	Details *BankDetails `json:"details"`
}
