package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/hostizzy/resiq/internal/calendar"
	"github.com/hostizzy/resiq/internal/ledger"
	"github.com/hostizzy/resiq/internal/metrics"
	"github.com/hostizzy/resiq/internal/middleware"
	"github.com/hostizzy/resiq/internal/models"
	"github.com/hostizzy/resiq/internal/rpc"
)

// SettlementService implements the Connect SettlementService
type SettlementService struct {
	rpc.UnimplementedSettlementServiceHandler
	ledger  *ledger.Ledger
	metrics *metrics.Metrics
}

// NewSettlementService creates a SettlementService over the given ledger.
// m may be nil.
func NewSettlementService(l *ledger.Ledger, m *metrics.Metrics) *SettlementService {
	return &SettlementService{ledger: l, metrics: m}
}

// ListSettlements returns the authenticated owner's monthly settlement ledger.
func (s *SettlementService) ListSettlements(ctx context.Context, req *connect.Request[rpc.ListSettlementsRequest]) (*connect.Response[rpc.ListSettlementsResponse], error) {
	ownerID := middleware.GetOwnerID(ctx)
	slog.Info("ListSettlements request received",
		"owner_id", ownerID,
		"descending", req.Msg.Descending,
	)

	records, err := s.ledger.Settlements(ctx, ownerID, req.Msg.Descending)
	if err != nil {
		slog.Error("ListSettlements failed", "owner_id", ownerID, "error", err)
		return nil, toConnectError(err)
	}

	settlements := make([]*rpc.Settlement, len(records))
	for i, r := range records {
		settlements[i] = settlementToRPC(r)
	}

	slog.Info("ListSettlements successful", "owner_id", ownerID, "months", len(settlements))

	return connect.NewResponse(&rpc.ListSettlementsResponse{
		Settlements: settlements,
	}), nil
}

// MarkSettlement marks one month of the owner's ledger as settled.
func (s *SettlementService) MarkSettlement(ctx context.Context, req *connect.Request[rpc.MarkSettlementRequest]) (*connect.Response[rpc.MarkSettlementResponse], error) {
	ownerID := middleware.GetOwnerID(ctx)
	slog.Info("MarkSettlement request received",
		"owner_id", ownerID,
		"year", req.Msg.Year,
		"month", req.Msg.Month,
		"settlement_type", req.Msg.SettlementType,
	)

	month := calendar.YearMonth{Year: req.Msg.Year, Month: time.Month(req.Msg.Month)}
	entry, err := s.ledger.MarkSettlement(ctx, ownerID, month, models.SettlementType(req.Msg.SettlementType))
	if err != nil {
		slog.Error("MarkSettlement failed", "owner_id", ownerID, "month", month.Key(), "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.ObserveMark(string(entry.SettlementType))

	return connect.NewResponse(&rpc.MarkSettlementResponse{
		Entry: &rpc.SettlementStatus{
			OwnerID:         entry.OwnerID,
			SettlementMonth: entry.SettlementMonth,
			Status:          entry.Status,
			CompletedAt:     entry.CompletedAt,
			SettlementType:  string(entry.SettlementType),
		},
	}), nil
}

// GetRevenueSummary returns the owner's revenue totals and payout balance.
func (s *SettlementService) GetRevenueSummary(ctx context.Context, req *connect.Request[rpc.GetRevenueSummaryRequest]) (*connect.Response[rpc.GetRevenueSummaryResponse], error) {
	ownerID := middleware.GetOwnerID(ctx)
	slog.Info("GetRevenueSummary request received", "owner_id", ownerID)

	summary, balance, err := s.ledger.RevenueSummary(ctx, ownerID)
	if err != nil {
		slog.Error("GetRevenueSummary failed", "owner_id", ownerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&rpc.GetRevenueSummaryResponse{
		Summary: &rpc.RevenueSummary{
			TotalRevenue:       summary.TotalRevenue,
			HostizzyCommission: summary.HostizzyCommission,
			NetEarnings:        summary.NetEarnings,
			BookingCount:       summary.BookingCount,
		},
		AvailableBalance: balance,
	}), nil
}

// RequestPayout files a payout request for the owner.
func (s *SettlementService) RequestPayout(ctx context.Context, req *connect.Request[rpc.RequestPayoutRequest]) (*connect.Response[rpc.RequestPayoutResponse], error) {
	ownerID := middleware.GetOwnerID(ctx)
	slog.Info("RequestPayout request received",
		"owner_id", ownerID,
		"amount", req.Msg.Amount.String(),
		"method", req.Msg.Method,
	)

	payout, err := s.ledger.RequestPayout(ctx, ownerID, req.Msg.Amount, models.PayoutMethod(req.Msg.Method), req.Msg.Notes)
	if err != nil {
		connectErr := toConnectError(err)
		switch connectErr.Code() {
		case connect.CodeInvalidArgument, connect.CodeFailedPrecondition:
			s.metrics.ObservePayout("rejected")
		default:
			s.metrics.ObservePayout("failed")
		}
		slog.Error("RequestPayout failed", "owner_id", ownerID, "error", err)
		return nil, connectErr
	}
	s.metrics.ObservePayout("created")

	return connect.NewResponse(&rpc.RequestPayoutResponse{
		Payout: payoutToRPC(*payout),
	}), nil
}

// ListPayoutRequests lists the owner's payout requests, newest first.
func (s *SettlementService) ListPayoutRequests(ctx context.Context, req *connect.Request[rpc.ListPayoutRequestsRequest]) (*connect.Response[rpc.ListPayoutRequestsResponse], error) {
	ownerID := middleware.GetOwnerID(ctx)
	slog.Info("ListPayoutRequests request received", "owner_id", ownerID)

	payouts, err := s.ledger.PayoutRequests(ctx, ownerID)
	if err != nil {
		slog.Error("ListPayoutRequests failed", "owner_id", ownerID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*rpc.Payout, len(payouts))
	for i, p := range payouts {
		out[i] = payoutToRPC(p)
	}

	return connect.NewResponse(&rpc.ListPayoutRequestsResponse{
		Payouts: out,
	}), nil
}

// GetBankDetails returns the owner's saved payout details.
func (s *SettlementService) GetBankDetails(ctx context.Context, req *connect.Request[rpc.GetBankDetailsRequest]) (*connect.Response[rpc.GetBankDetailsResponse], error) {
	ownerID := middleware.GetOwnerID(ctx)
	slog.Info("GetBankDetails request received", "owner_id", ownerID)

	details, err := s.ledger.BankDetails(ctx, ownerID)
	if err != nil {
		slog.Error("GetBankDetails failed", "owner_id", ownerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&rpc.GetBankDetailsResponse{
		Details: bankDetailsToRPC(details),
	}), nil
}

// SaveBankDetails replaces the owner's payout details.
func (s *SettlementService) SaveBankDetails(ctx context.Context, req *connect.Request[rpc.SaveBankDetailsRequest]) (*connect.Response[rpc.SaveBankDetailsResponse], error) {
	ownerID := middleware.GetOwnerID(ctx)
	slog.Info("SaveBankDetails request received", "owner_id", ownerID)

	if req.Msg.Details == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, ledger.ErrBankDetailsIncomplete)
	}
	in := req.Msg.Details
	saved, err := s.ledger.SaveBankDetails(ctx, ownerID, models.BankDetails{
		AccountHolderName: in.AccountHolderName,
		AccountNumber:     in.AccountNumber,
		IFSC:              in.IFSC,
		BankName:          in.BankName,
		Branch:            in.Branch,
		UPIID:             in.UPIID,
	})
	if err != nil {
		slog.Error("SaveBankDetails failed", "owner_id", ownerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&rpc.SaveBankDetailsResponse{
		Details: bankDetailsToRPC(saved),
	}), nil
}

// toConnectError maps ledger errors onto Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, ledger.ErrOwnerRequired):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, ledger.ErrSourceUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, ledger.ErrMarkFailed):
		return connect.NewError(connect.CodeInternal, err)
	case errors.Is(err, ledger.ErrPayoutDetailsMissing):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, ledger.ErrInvalidMonth),
		errors.Is(err, ledger.ErrMonthBeforeAnchor),
		errors.Is(err, ledger.ErrBankDetailsIncomplete),
		errors.Is(err, ledger.ErrInvalidSettlementType),
		errors.Is(err, ledger.ErrPayoutBelowMinimum),
		errors.Is(err, ledger.ErrPayoutExceedsBalance),
		errors.Is(err, ledger.ErrInvalidPayoutMethod):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func settlementToRPC(r models.SettlementRecord) *rpc.Settlement {
	out := &rpc.Settlement{
		Year:               r.Year,
		Month:              r.Month,
		MonthKey:           calendar.YearMonth{Year: r.Year, Month: time.Month(r.Month)}.Key(),
		TotalCommission:    r.TotalCommission,
		PaymentsToOwner:    r.PaymentsToOwner,
		PaymentsToHostizzy: r.PaymentsToHostizzy,
		NetSettlement:      r.NetSettlement,
		IsCompleted:        r.IsCompleted,
		SettlementType:     string(r.SettlementType),
	}
	if r.IsCompleted && !r.CompletedAt.IsZero() {
		completedAt := r.CompletedAt
		out.CompletedAt = &completedAt
	}
	return out
}

func payoutToRPC(p models.PayoutRequest) *rpc.Payout {
	return &rpc.Payout{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Amount:      p.Amount,
		Method:      string(p.Method),
		OwnerNotes:  p.OwnerNotes,
		Status:      string(p.Status),
		RequestedAt: p.RequestedAt,
	}
}

func bankDetailsToRPC(d *models.BankDetails) *rpc.BankDetails {
	if d == nil {
		return nil
	}
	out := &rpc.BankDetails{
		AccountHolderName: d.AccountHolderName,
		AccountNumber:     d.AccountNumber,
		IFSC:              d.IFSC,
		BankName:          d.BankName,
		Branch:            d.Branch,
		UPIID:             d.UPIID,
	}
	if !d.UpdatedAt.IsZero() {
		updatedAt := d.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return out
}
