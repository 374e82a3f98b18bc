package rpc

import (
	"log/slog"
	"time"

	"github.com/hostizzy/resiq/internal/calendar"
)

// Messages that carry a settlement or payout decision render the fields an
// operator needs to trace it. Owner notes and account numbers stay out of
// logs.

func (r *ListSettlementsRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.Bool("descending", r.Descending))
}

func (r *ListSettlementsResponse) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("months", len(r.Settlements)))
}

func (r *MarkSettlementRequest) LogValue() slog.Value {
	month := calendar.YearMonth{Year: r.Year, Month: time.Month(r.Month)}
	return slog.GroupValue(
		slog.String("settlement_month", month.Key()),
		slog.String("settlement_type", r.SettlementType),
	)
}

func (r *MarkSettlementResponse) LogValue() slog.Value {
	if r.Entry == nil {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		slog.String("settlement_month", r.Entry.SettlementMonth),
		slog.String("status", r.Entry.Status),
	)
}

func (r *RequestPayoutRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("amount", r.Amount.String()),
		slog.String("method", r.Method),
	)
}

func (r *RequestPayoutResponse) LogValue() slog.Value {
	if r.Payout == nil {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		slog.String("payout_id", r.Payout.ID),
		slog.String("amount", r.Payout.Amount.String()),
		slog.String("status", r.Payout.Status),
	)
}

func (r *SaveBankDetailsRequest) LogValue() slog.Value {
	if r.Details == nil {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		slog.String("bank_ifsc", r.Details.IFSC),
		slog.Bool("has_upi", r.Details.UPIID != ""),
	)
}
