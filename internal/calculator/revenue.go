package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/hostizzy/resiq/internal/models"
)

// SummarizeRevenue totals an owner's non-cancelled bookings.
func SummarizeRevenue(bookings []models.Booking) models.RevenueSummary {
	summary := models.RevenueSummary{
		TotalRevenue:       decimal.Zero,
		HostizzyCommission: decimal.Zero,
	}
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(b.TotalAmount)
		summary.HostizzyCommission = summary.HostizzyCommission.Add(b.CommissionAmount)
		summary.BookingCount++
	}
	summary.NetEarnings = summary.TotalRevenue.Sub(summary.HostizzyCommission)
	return summary
}

// AvailableBalance is what an owner can still request as a payout: net
// earnings less every request that has not been rejected. Never negative.
func AvailableBalance(summary models.RevenueSummary, payouts []models.PayoutRequest) decimal.Decimal {
	committed := decimal.Zero
	for _, p := range payouts {
		if p.Status == models.PayoutRejected {
			continue
		}
		committed = committed.Add(p.Amount)
	}
	balance := summary.NetEarnings.Sub(committed)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
