package calculator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hostizzy/resiq/internal/calendar"
	"github.com/hostizzy/resiq/internal/models"
)

var testWindow = calendar.Range{
	From: calendar.SettlementAnchor,
	To:   calendar.YearMonth{Year: 2025, Month: time.October},
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func payment(bookingID, amount, recipient string, paid time.Time) models.Payment {
	return models.Payment{
		BookingID:   bookingID,
		Amount:      dec(amount),
		Recipient:   recipient,
		Party:       models.ClassifyRecipient(recipient),
		PaymentDate: paid,
	}
}

func findMonth(t *testing.T, records []models.SettlementRecord, y, m int) models.SettlementRecord {
	t.Helper()
	for _, r := range records {
		if r.Year == y && r.Month == m {
			return r
		}
	}
	t.Fatalf("no record for %d-%02d", y, m)
	return models.SettlementRecord{}
}

func assertDec(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}

func TestCalculateSettlements(t *testing.T) {
	b1 := models.Booking{
		ID:               "B1",
		PropertyID:       "P1",
		CheckIn:          date(2025, time.March, 10),
		Status:           models.BookingConfirmed,
		TotalAmount:      dec("5000"),
		CommissionAmount: dec("500"),
	}
	p1 := payment("B1", "5000", "Hostizzy Collections", date(2025, time.March, 15))

	tests := []struct {
		name         string
		bookings     []models.Booking
		payments     []models.Payment
		statuses     []models.SettlementStatusEntry
		validateFunc func(t *testing.T, records []models.SettlementRecord)
	}{
		{
			name:     "confirmed booking paid to hostizzy",
			bookings: []models.Booking{b1},
			payments: []models.Payment{p1},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				march := findMonth(t, records, 2025, 3)
				assertDec(t, "TotalCommission", march.TotalCommission, "500")
				assertDec(t, "PaymentsToHostizzy", march.PaymentsToHostizzy, "5000")
				assertDec(t, "PaymentsToOwner", march.PaymentsToOwner, "0")
				assertDec(t, "NetSettlement", march.NetSettlement, "4500")
			},
		},
		{
			name: "cancelled booking drops commission and its payments",
			bookings: []models.Booking{func() models.Booking {
				b := b1
				b.Status = models.BookingCancelled
				return b
			}()},
			payments: []models.Payment{p1},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				march := findMonth(t, records, 2025, 3)
				assertDec(t, "TotalCommission", march.TotalCommission, "0")
				assertDec(t, "PaymentsToHostizzy", march.PaymentsToHostizzy, "0")
				assertDec(t, "NetSettlement", march.NetSettlement, "0")
				for _, r := range records {
					if !r.TotalCommission.IsZero() || !r.PaymentsToHostizzy.IsZero() || !r.PaymentsToOwner.IsZero() {
						t.Errorf("cancelled booking leaked into %d-%02d", r.Year, r.Month)
					}
				}
			},
		},
		{
			name:     "payment made two months later settles in the check-in month",
			bookings: []models.Booking{b1},
			payments: []models.Payment{payment("B1", "1200", "Owner", date(2025, time.May, 2))},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				march := findMonth(t, records, 2025, 3)
				assertDec(t, "PaymentsToOwner", march.PaymentsToOwner, "1200")
				may := findMonth(t, records, 2025, 5)
				assertDec(t, "May PaymentsToOwner", may.PaymentsToOwner, "0")
			},
		},
		{
			name:     "month without bookings is present with zero sums",
			bookings: []models.Booking{b1},
			payments: []models.Payment{p1},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				october := findMonth(t, records, 2025, 10)
				assertDec(t, "TotalCommission", october.TotalCommission, "0")
				assertDec(t, "PaymentsToOwner", october.PaymentsToOwner, "0")
				assertDec(t, "PaymentsToHostizzy", october.PaymentsToHostizzy, "0")
				assertDec(t, "NetSettlement", october.NetSettlement, "0")
				if october.IsCompleted {
					t.Error("empty month should not be completed")
				}
			},
		},
		{
			name: "owner owes hostizzy when commission exceeds collections",
			bookings: []models.Booking{
				{ID: "B2", CheckIn: date(2025, time.June, 1), Status: models.BookingCompleted, TotalAmount: dec("8000"), CommissionAmount: dec("1600.50")},
				{ID: "B3", CheckIn: date(2025, time.June, 20), Status: models.BookingCheckedIn, TotalAmount: dec("3000"), CommissionAmount: dec("600.25")},
			},
			payments: []models.Payment{
				payment("B2", "8000", "owner account", date(2025, time.June, 1)),
				payment("B3", "1000", "HOSTIZZY", date(2025, time.June, 20)),
				payment("B3", "2000", "Property Owner", date(2025, time.June, 21)),
			},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				june := findMonth(t, records, 2025, 6)
				assertDec(t, "TotalCommission", june.TotalCommission, "2200.75")
				assertDec(t, "PaymentsToOwner", june.PaymentsToOwner, "10000")
				assertDec(t, "PaymentsToHostizzy", june.PaymentsToHostizzy, "1000")
				assertDec(t, "NetSettlement", june.NetSettlement, "-1200.75")
			},
		},
		{
			name:     "recipient matching both parties counts in both sums",
			bookings: []models.Booking{b1},
			payments: []models.Payment{payment("B1", "300", "Hostizzy Owner Services", date(2025, time.March, 11))},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				march := findMonth(t, records, 2025, 3)
				assertDec(t, "PaymentsToOwner", march.PaymentsToOwner, "300")
				assertDec(t, "PaymentsToHostizzy", march.PaymentsToHostizzy, "300")
			},
		},
		{
			name:     "unclassified recipient is ignored",
			bookings: []models.Booking{b1},
			payments: []models.Payment{payment("B1", "700", "Guest refund", date(2025, time.March, 11))},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				march := findMonth(t, records, 2025, 3)
				assertDec(t, "PaymentsToOwner", march.PaymentsToOwner, "0")
				assertDec(t, "PaymentsToHostizzy", march.PaymentsToHostizzy, "0")
			},
		},
		{
			name: "booking with unparseable check-in is skipped",
			bookings: []models.Booking{
				{ID: "B9", Status: models.BookingConfirmed, TotalAmount: dec("900"), CommissionAmount: dec("90")},
			},
			payments: []models.Payment{payment("B9", "900", "Hostizzy", date(2025, time.March, 1))},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				for _, r := range records {
					if !r.TotalCommission.IsZero() || !r.PaymentsToHostizzy.IsZero() {
						t.Errorf("undated booking leaked into %d-%02d", r.Year, r.Month)
					}
				}
			},
		},
		{
			name: "booking outside the window is ignored",
			bookings: []models.Booking{
				{ID: "B0", CheckIn: date(2024, time.October, 31), Status: models.BookingCompleted, CommissionAmount: dec("100")},
			},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				for _, r := range records {
					if !r.TotalCommission.IsZero() {
						t.Errorf("out-of-window booking leaked into %d-%02d", r.Year, r.Month)
					}
				}
			},
		},
		{
			name:     "completion flag decorates its month only",
			bookings: []models.Booking{b1},
			payments: []models.Payment{p1},
			statuses: []models.SettlementStatusEntry{
				{OwnerID: "42", SettlementMonth: "2025-03", Status: models.StatusCompleted, CompletedAt: date(2025, time.April, 2), SettlementType: models.SettlementPayoutReceived},
				{OwnerID: "7", SettlementMonth: "2025-04", Status: models.StatusCompleted, CompletedAt: date(2025, time.May, 2), SettlementType: models.SettlementPaymentDone},
			},
			validateFunc: func(t *testing.T, records []models.SettlementRecord) {
				march := findMonth(t, records, 2025, 3)
				if !march.IsCompleted {
					t.Fatal("March should be completed")
				}
				if march.SettlementType != models.SettlementPayoutReceived {
					t.Errorf("SettlementType = %q, want payout_received", march.SettlementType)
				}
				if !march.CompletedAt.Equal(date(2025, time.April, 2)) {
					t.Errorf("CompletedAt = %v", march.CompletedAt)
				}
				april := findMonth(t, records, 2025, 4)
				if april.IsCompleted {
					t.Error("another owner's flag must not decorate April")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := CalculateSettlements(SettlementInput{
				OwnerID:  "42",
				Bookings: tt.bookings,
				Payments: tt.payments,
				Statuses: tt.statuses,
				Window:   testWindow,
			})
			if len(records) != testWindow.Len() {
				t.Fatalf("got %d records, want %d", len(records), testWindow.Len())
			}
			tt.validateFunc(t, records)
		})
	}
}

func TestCalculateSettlementsContiguousAscending(t *testing.T) {
	records := CalculateSettlements(SettlementInput{OwnerID: "42", Window: testWindow})

	if len(records) != 12 {
		t.Fatalf("got %d records, want 12", len(records))
	}
	want := testWindow.From
	for i, r := range records {
		if r.Year != want.Year || r.Month != int(want.Month) {
			t.Fatalf("record %d is %d-%02d, want %s", i, r.Year, r.Month, want)
		}
		want = want.AddMonths(1)
	}
}

func TestCalculateSettlementsNetIsExact(t *testing.T) {
	bookings := []models.Booking{
		{ID: "A", CheckIn: date(2025, time.January, 3), Status: models.BookingCompleted, CommissionAmount: dec("0.10")},
		{ID: "B", CheckIn: date(2025, time.January, 9), Status: models.BookingCompleted, CommissionAmount: dec("0.20")},
	}
	payments := []models.Payment{payment("A", "0.30", "hostizzy", date(2025, time.January, 3))}

	records := CalculateSettlements(SettlementInput{OwnerID: "42", Bookings: bookings, Payments: payments, Window: testWindow})
	jan := findMonth(t, records, 2025, 1)

	if !jan.NetSettlement.Equal(jan.PaymentsToHostizzy.Sub(jan.TotalCommission)) {
		t.Errorf("NetSettlement %s != %s - %s", jan.NetSettlement, jan.PaymentsToHostizzy, jan.TotalCommission)
	}
	if !jan.NetSettlement.IsZero() {
		t.Errorf("NetSettlement = %s, want exactly 0", jan.NetSettlement)
	}
}

func TestCalculateSettlementsBucketsInLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Midnight 1 April in Kolkata is still 31 March in UTC.
	checkIn := time.Date(2025, time.April, 1, 0, 0, 0, 0, kolkata)
	bookings := []models.Booking{{ID: "K", CheckIn: checkIn, Status: models.BookingConfirmed, CommissionAmount: dec("50")}}

	records := CalculateSettlements(SettlementInput{OwnerID: "42", Bookings: bookings, Window: testWindow, Location: kolkata})
	assertDec(t, "April commission", findMonth(t, records, 2025, 4).TotalCommission, "50")
	assertDec(t, "March commission", findMonth(t, records, 2025, 3).TotalCommission, "0")
}

func TestReverse(t *testing.T) {
	records := CalculateSettlements(SettlementInput{OwnerID: "42", Window: testWindow})
	reversed := Reverse(records)

	if len(reversed) != len(records) {
		t.Fatalf("len = %d, want %d", len(reversed), len(records))
	}
	if reversed[0].Year != 2025 || reversed[0].Month != 10 {
		t.Errorf("first = %d-%02d, want 2025-10", reversed[0].Year, reversed[0].Month)
	}
	if records[0].Year != 2024 || records[0].Month != 11 {
		t.Error("Reverse must not modify its input")
	}
}
