package models

import "testing"

func TestClassifyRecipient(t *testing.T) {
	tests := []struct {
		tag       string
		owner     bool
		hostizzy  bool
		ambiguous bool
	}{
		{tag: "Owner", owner: true},
		{tag: "paid to OWNER directly", owner: true},
		{tag: "Hostizzy", hostizzy: true},
		{tag: "hostizzy razorpay", hostizzy: true},
		{tag: "Hostizzy Owner Services", owner: true, hostizzy: true, ambiguous: true},
		{tag: "Guest refund"},
		{tag: ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			p := ClassifyRecipient(tt.tag)
			if p.Has(PartyOwner) != tt.owner {
				t.Errorf("owner: expected %v, got %v", tt.owner, p.Has(PartyOwner))
			}
			if p.Has(PartyHostizzy) != tt.hostizzy {
				t.Errorf("hostizzy: expected %v, got %v", tt.hostizzy, p.Has(PartyHostizzy))
			}
			if p.Ambiguous() != tt.ambiguous {
				t.Errorf("ambiguous: expected %v, got %v", tt.ambiguous, p.Ambiguous())
			}
		})
	}
}

func TestValidators(t *testing.T) {
	if !SettlementPayoutReceived.Valid() || !SettlementPaymentDone.Valid() {
		t.Error("expected known settlement types to be valid")
	}
	if SettlementType("refund").Valid() {
		t.Error("expected unknown settlement type to be invalid")
	}
	if !PayoutBankTransfer.Valid() || !PayoutUPI.Valid() {
		t.Error("expected known payout methods to be valid")
	}
	if PayoutMethod("cheque").Valid() {
		t.Error("expected unknown payout method to be invalid")
	}
	if !(Booking{Status: BookingCancelled}).IsCancelled() {
		t.Error("expected cancelled booking to report cancelled")
	}
}

func TestBankDetails(t *testing.T) {
	d := &BankDetails{
		AccountHolderName: "  Asha Rao ",
		AccountNumber:     " 001234567890 ",
		IFSC:              " hdfc0001234",
		UPIID:             "",
	}
	d.Normalize()

	if d.AccountHolderName != "Asha Rao" || d.AccountNumber != "001234567890" {
		t.Errorf("fields not trimmed: %+v", d)
	}
	if d.IFSC != "HDFC0001234" {
		t.Errorf("IFSC: expected 'HDFC0001234', got '%s'", d.IFSC)
	}

	if !d.CanReceive(PayoutBankTransfer) {
		t.Error("expected bank transfer to be receivable with an account number")
	}
	if d.CanReceive(PayoutUPI) {
		t.Error("expected UPI to be unreceivable without a UPI id")
	}

	var none *BankDetails
	if none.CanReceive(PayoutBankTransfer) || none.CanReceive(PayoutUPI) {
		t.Error("expected missing details to receive nothing")
	}
}
