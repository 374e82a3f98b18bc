package models

import (
	"strings"
	"time"
)

// BankDetails is where an owner's payouts are sent.
type BankDetails struct {
	OwnerID           string
	AccountHolderName string
	AccountNumber     string
	IFSC              string
	BankName          string
	Branch            string
	UPIID             string
	UpdatedAt         time.Time
}

// Normalize trims every field and upper-cases the IFSC code.
func (d *BankDetails) Normalize() {
	d.AccountHolderName = strings.TrimSpace(d.AccountHolderName)
	d.AccountNumber = strings.TrimSpace(d.AccountNumber)
	d.IFSC = strings.ToUpper(strings.TrimSpace(d.IFSC))
	d.BankName = strings.TrimSpace(d.BankName)
	d.Branch = strings.TrimSpace(d.Branch)
	d.UPIID = strings.TrimSpace(d.UPIID)
}

// CanReceive reports whether a payout by method has somewhere to go:
// bank transfers need an account number, UPI payouts a UPI id.
func (d *BankDetails) CanReceive(method PayoutMethod) bool {
	if d == nil {
		return false
	}
	switch method {
	case PayoutBankTransfer:
		return d.AccountNumber != ""
	case PayoutUPI:
		return d.UPIID != ""
	default:
		return false
	}
}
