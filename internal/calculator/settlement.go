package calculator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hostizzy/resiq/internal/calendar"
	"github.com/hostizzy/resiq/internal/models"
)

// SettlementInput is a fully materialized snapshot of one owner's data.
type SettlementInput struct {
	OwnerID  string
	Bookings []models.Booking
	Payments []models.Payment

	// Statuses are the completion flags stored for the owner. Entries for
	// other owners or outside the window are ignored.
	Statuses []models.SettlementStatusEntry

	Window calendar.Range

	// Location is the calendar used to bucket check-in dates. Nil means UTC.
	Location *time.Location
}

// CalculateSettlements reconciles every month of the window, oldest first.
//
// Algorithm, per month m:
// - monthBookings: non-cancelled bookings whose check-in falls in m
// - totalCommission: sum of their commission amounts
// - monthPayments: every payment for one of those bookings, whatever its own date
// - paymentsToOwner / paymentsToHostizzy: sums by recipient party
// - netSettlement = paymentsToHostizzy - totalCommission
//
// Months without activity still produce an all-zero record. Bookings with an
// unparseable (zero) check-in are left out of every month.
func CalculateSettlements(in SettlementInput) []models.SettlementRecord {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	// Filter bookings before deriving ids: payments of cancelled bookings
	// must not reach any month.
	bookingsByMonth := make(map[calendar.YearMonth][]models.Booking)
	for _, b := range in.Bookings {
		if b.IsCancelled() || b.CheckIn.IsZero() {
			continue
		}
		ym := calendar.Of(b.CheckIn, loc)
		bookingsByMonth[ym] = append(bookingsByMonth[ym], b)
	}

	paymentsByBooking := make(map[string][]models.Payment)
	for _, p := range in.Payments {
		paymentsByBooking[p.BookingID] = append(paymentsByBooking[p.BookingID], p)
	}

	statuses := make(map[string]models.SettlementStatusEntry)
	for _, s := range in.Statuses {
		if s.OwnerID != in.OwnerID {
			continue
		}
		statuses[s.SettlementMonth] = s
	}

	months := in.Window.Months()
	records := make([]models.SettlementRecord, 0, len(months))
	for _, ym := range months {
		rec := models.SettlementRecord{
			Year:               ym.Year,
			Month:              int(ym.Month),
			TotalCommission:    decimal.Zero,
			PaymentsToOwner:    decimal.Zero,
			PaymentsToHostizzy: decimal.Zero,
		}

		for _, b := range bookingsByMonth[ym] {
			rec.TotalCommission = rec.TotalCommission.Add(b.CommissionAmount)

			for _, p := range paymentsByBooking[b.ID] {
				if p.Party.Has(models.PartyOwner) {
					rec.PaymentsToOwner = rec.PaymentsToOwner.Add(p.Amount)
				}
				if p.Party.Has(models.PartyHostizzy) {
					rec.PaymentsToHostizzy = rec.PaymentsToHostizzy.Add(p.Amount)
				}
			}
		}

		rec.NetSettlement = rec.PaymentsToHostizzy.Sub(rec.TotalCommission)

		if s, ok := statuses[ym.Key()]; ok && s.Status == models.StatusCompleted {
			rec.IsCompleted = true
			rec.CompletedAt = s.CompletedAt
			rec.SettlementType = s.SettlementType
		}

		records = append(records, rec)
	}

	return records
}

// Reverse returns the records most recent first, the order used for display.
func Reverse(records []models.SettlementRecord) []models.SettlementRecord {
	out := make([]models.SettlementRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}
