package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RecipientParty classifies who received a payment. It is a bit set: a
// free-text recipient tag can match both parties.
type RecipientParty uint8

const (
	PartyOwner RecipientParty = 1 << iota
	PartyHostizzy
)

// Has reports whether p includes party.
func (p RecipientParty) Has(party RecipientParty) bool {
	return p&party != 0
}

// Ambiguous reports whether the tag matched both the owner and Hostizzy.
func (p RecipientParty) Ambiguous() bool {
	return p.Has(PartyOwner) && p.Has(PartyHostizzy)
}

// ClassifyRecipient maps a free-text recipient tag onto parties by
// case-insensitive substring: "owner" marks the owner, "hostizzy" marks
// the platform. A tag such as "Hostizzy Owner Services" matches both.
func ClassifyRecipient(tag string) RecipientParty {
	lower := strings.ToLower(tag)
	var p RecipientParty
	if strings.Contains(lower, "owner") {
		p |= PartyOwner
	}
	if strings.Contains(lower, "hostizzy") {
		p |= PartyHostizzy
	}
	return p
}

// Payment represents one money movement tied to a booking.
type Payment struct {
	ID        string
	BookingID string
	Amount    decimal.Decimal

	// Recipient is the raw recipient tag as stored.
	Recipient string

	// Party is the classification of Recipient, computed when the row is read.
	Party RecipientParty

	// PaymentDate is informational only; payments settle against the
	// check-in month of their booking.
	PaymentDate time.Time
}
