package postgres

import (
	"database/sql"
	"time"
)

// Table rows mirror the hosted Supabase schema. Numeric columns are read as
// strings so malformed values can be coerced instead of failing the scan.

type propertyRow struct {
	ID      string `gorm:"column:id;primaryKey"`
	OwnerID string `gorm:"column:owner_id;index"`
}

func (propertyRow) TableName() string { return "properties" }

type reservationRow struct {
	BookingID       string         `gorm:"column:booking_id;primaryKey"`
	PropertyID      string         `gorm:"column:property_id;index"`
	CheckIn         sql.NullTime   `gorm:"column:check_in"`
	Status          string         `gorm:"column:status"`
	TotalAmount     sql.NullString `gorm:"column:total_amount"`
	HostizzyRevenue sql.NullString `gorm:"column:hostizzy_revenue"`
}

func (reservationRow) TableName() string { return "reservations" }

type paymentRow struct {
	ID               string         `gorm:"column:id;primaryKey"`
	BookingID        string         `gorm:"column:booking_id;index"`
	Amount           sql.NullString `gorm:"column:amount"`
	PaymentRecipient sql.NullString `gorm:"column:payment_recipient"`
	PaymentDate      sql.NullTime   `gorm:"column:payment_date"`
}

func (paymentRow) TableName() string { return "payments" }

type settlementRow struct {
	OwnerID         string    `gorm:"column:owner_id;primaryKey"`
	SettlementMonth string    `gorm:"column:settlement_month;primaryKey"`
	Status          string    `gorm:"column:status;not null"`
	CompletedAt     time.Time `gorm:"column:completed_at;not null"`
	SettlementType  string    `gorm:"column:settlement_type;not null"`
}

func (settlementRow) TableName() string { return "owner_settlements" }

type payoutRow struct {
	ID           string         `gorm:"column:id;primaryKey"`
	OwnerID      string         `gorm:"column:owner_id;index;not null"`
	Amount       string         `gorm:"column:amount;type:numeric(12,2);not null"`
	PayoutMethod string         `gorm:"column:payout_method;not null"`
	OwnerNotes   sql.NullString `gorm:"column:owner_notes"`
	Status       string         `gorm:"column:status;not null"`
	RequestedAt  time.Time      `gorm:"column:requested_at;not null"`
}

func (payoutRow) TableName() string { return "payout_requests" }

// ownerRow covers the payout columns of the portal's owners table.
type ownerRow struct {
	ID                string         `gorm:"column:id;primaryKey"`
	AccountHolderName sql.NullString `gorm:"column:account_holder_name"`
	BankAccountNumber sql.NullString `gorm:"column:bank_account_number"`
	BankIFSC          sql.NullString `gorm:"column:bank_ifsc"`
	BankName          sql.NullString `gorm:"column:bank_name"`
	BankBranch        sql.NullString `gorm:"column:bank_branch"`
	UPIID             sql.NullString `gorm:"column:upi_id"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
}

func (ownerRow) TableName() string { return "owners" }
