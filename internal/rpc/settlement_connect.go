package rpc

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// SettlementServiceName is the fully-qualified name of the SettlementService.
const SettlementServiceName = "resiq.v1.SettlementService"

const (
	SettlementServiceListSettlementsProcedure    = "/resiq.v1.SettlementService/ListSettlements"
	SettlementServiceMarkSettlementProcedure     = "/resiq.v1.SettlementService/MarkSettlement"
	SettlementServiceGetRevenueSummaryProcedure  = "/resiq.v1.SettlementService/GetRevenueSummary"
	SettlementServiceRequestPayoutProcedure      = "/resiq.v1.SettlementService/RequestPayout"
	SettlementServiceListPayoutRequestsProcedure = "/resiq.v1.SettlementService/ListPayoutRequests"
	SettlementServiceGetBankDetailsProcedure     = "/resiq.v1.SettlementService/GetBankDetails"
	SettlementServiceSaveBankDetailsProcedure    = "/resiq.v1.SettlementService/SaveBankDetails"
)

// SettlementServiceClient is a client for the resiq.v1.SettlementService service.
type SettlementServiceClient interface {
	ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error)
	MarkSettlement(context.Context, *connect.Request[MarkSettlementRequest]) (*connect.Response[MarkSettlementResponse], error)
	GetRevenueSummary(context.Context, *connect.Request[GetRevenueSummaryRequest]) (*connect.Response[GetRevenueSummaryResponse], error)
	RequestPayout(context.Context, *connect.Request[RequestPayoutRequest]) (*connect.Response[RequestPayoutResponse], error)
	ListPayoutRequests(context.Context, *connect.Request[ListPayoutRequestsRequest]) (*connect.Response[ListPayoutRequestsResponse], error)
	GetBankDetails(context.Context, *connect.Request[GetBankDetailsRequest]) (*connect.Response[GetBankDetailsResponse], error)
	SaveBankDetails(context.Context, *connect.Request[SaveBankDetailsRequest]) (*connect.Response[SaveBankDetailsResponse], error)
}

// NewSettlementServiceClient constructs a client for the
// resiq.v1.SettlementService service. Requests are sent as JSON.
//
// The URL supplied here should be the base URL for the server (for example,
// http://localhost:8080).
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &settlementServiceClient{
		listSettlements: connect.NewClient[ListSettlementsRequest, ListSettlementsResponse](
			httpClient, baseURL+SettlementServiceListSettlementsProcedure, opts...,
		),
		markSettlement: connect.NewClient[MarkSettlementRequest, MarkSettlementResponse](
			httpClient, baseURL+SettlementServiceMarkSettlementProcedure, opts...,
		),
		getRevenueSummary: connect.NewClient[GetRevenueSummaryRequest, GetRevenueSummaryResponse](
			httpClient, baseURL+SettlementServiceGetRevenueSummaryProcedure, opts...,
		),
		requestPayout: connect.NewClient[RequestPayoutRequest, RequestPayoutResponse](
			httpClient, baseURL+SettlementServiceRequestPayoutProcedure, opts...,
		),
		listPayoutRequests: connect.NewClient[ListPayoutRequestsRequest, ListPayoutRequestsResponse](
			httpClient, baseURL+SettlementServiceListPayoutRequestsProcedure, opts...,
		),
		getBankDetails: connect.NewClient[GetBankDetailsRequest, GetBankDetailsResponse](
			httpClient, baseURL+SettlementServiceGetBankDetailsProcedure, opts...,
		),
		saveBankDetails: connect.NewClient[SaveBankDetailsRequest, SaveBankDetailsResponse](
			httpClient, baseURL+SettlementServiceSaveBankDetailsProcedure, opts...,
		),
	}
}

type settlementServiceClient struct {
	listSettlements    *connect.Client[ListSettlementsRequest, ListSettlementsResponse]
	markSettlement     *connect.Client[MarkSettlementRequest, MarkSettlementResponse]
	getRevenueSummary  *connect.Client[GetRevenueSummaryRequest, GetRevenueSummaryResponse]
	requestPayout      *connect.Client[RequestPayoutRequest, RequestPayoutResponse]
	listPayoutRequests *connect.Client[ListPayoutRequestsRequest, ListPayoutRequestsResponse]
	getBankDetails     *connect.Client[GetBankDetailsRequest, GetBankDetailsResponse]
	saveBankDetails    *connect.Client[SaveBankDetailsRequest, SaveBankDetailsResponse]
}

func (c *settlementServiceClient) ListSettlements(ctx context.Context, req *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

func (c *settlementServiceClient) MarkSettlement(ctx context.Context, req *connect.Request[MarkSettlementRequest]) (*connect.Response[MarkSettlementResponse], error) {
	return c.markSettlement.CallUnary(ctx, req)
}

func (c *settlementServiceClient) GetRevenueSummary(ctx context.Context, req *connect.Request[GetRevenueSummaryRequest]) (*connect.Response[GetRevenueSummaryResponse], error) {
	return c.getRevenueSummary.CallUnary(ctx, req)
}

func (c *settlementServiceClient) RequestPayout(ctx context.Context, req *connect.Request[RequestPayoutRequest]) (*connect.Response[RequestPayoutResponse], error) {
	return c.requestPayout.CallUnary(ctx, req)
}

func (c *settlementServiceClient) ListPayoutRequests(ctx context.Context, req *connect.Request[ListPayoutRequestsRequest]) (*connect.Response[ListPayoutRequestsResponse], error) {
	return c.listPayoutRequests.CallUnary(ctx, req)
}

func (c *settlementServiceClient) GetBankDetails(ctx context.Context, req *connect.Request[GetBankDetailsRequest]) (*connect.Response[GetBankDetailsResponse], error) {
	return c.getBankDetails.CallUnary(ctx, req)
}

func (c *settlementServiceClient) SaveBankDetails(ctx context.Context, req *connect.Request[SaveBankDetailsRequest]) (*connect.Response[SaveBankDetailsResponse], error) {
	return c.saveBankDetails.CallUnary(ctx, req)
}

// SettlementServiceHandler is an implementation of the resiq.v1.SettlementService service.
type SettlementServiceHandler interface {
	ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error)
	MarkSettlement(context.Context, *connect.Request[MarkSettlementRequest]) (*connect.Response[MarkSettlementResponse], error)
	GetRevenueSummary(context.Context, *connect.Request[GetRevenueSummaryRequest]) (*connect.Response[GetRevenueSummaryResponse], error)
	RequestPayout(context.Context, *connect.Request[RequestPayoutRequest]) (*connect.Response[RequestPayoutResponse], error)
	ListPayoutRequests(context.Context, *connect.Request[ListPayoutRequestsRequest]) (*connect.Response[ListPayoutRequestsResponse], error)
	GetBankDetails(context.Context, *connect.Request[GetBankDetailsRequest]) (*connect.Response[GetBankDetailsResponse], error)
	SaveBankDetails(context.Context, *connect.Request[SaveBankDetailsRequest]) (*connect.Response[SaveBankDetailsResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	listSettlements := connect.NewUnaryHandler(
		SettlementServiceListSettlementsProcedure, svc.ListSettlements, opts...,
	)
	markSettlement := connect.NewUnaryHandler(
		SettlementServiceMarkSettlementProcedure, svc.MarkSettlement, opts...,
	)
	getRevenueSummary := connect.NewUnaryHandler(
		SettlementServiceGetRevenueSummaryProcedure, svc.GetRevenueSummary, opts...,
	)
	requestPayout := connect.NewUnaryHandler(
		SettlementServiceRequestPayoutProcedure, svc.RequestPayout, opts...,
	)
	listPayoutRequests := connect.NewUnaryHandler(
		SettlementServiceListPayoutRequestsProcedure, svc.ListPayoutRequests, opts...,
	)
	getBankDetails := connect.NewUnaryHandler(
		SettlementServiceGetBankDetailsProcedure, svc.GetBankDetails, opts...,
	)
	saveBankDetails := connect.NewUnaryHandler(
		SettlementServiceSaveBankDetailsProcedure, svc.SaveBankDetails, opts...,
	)
	return "/" + SettlementServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettlementServiceListSettlementsProcedure:
			listSettlements.ServeHTTP(w, r)
		case SettlementServiceMarkSettlementProcedure:
			markSettlement.ServeHTTP(w, r)
		case SettlementServiceGetRevenueSummaryProcedure:
			getRevenueSummary.ServeHTTP(w, r)
		case SettlementServiceRequestPayoutProcedure:
			requestPayout.ServeHTTP(w, r)
		case SettlementServiceListPayoutRequestsProcedure:
			listPayoutRequests.ServeHTTP(w, r)
		case SettlementServiceGetBankDetailsProcedure:
			getBankDetails.ServeHTTP(w, r)
		case SettlementServiceSaveBankDetailsProcedure:
			saveBankDetails.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSettlementServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettlementServiceHandler struct{}

func (UnimplementedSettlementServiceHandler) ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("resiq.v1.SettlementService.ListSettlements is not implemented"))
}

func (UnimplementedSettlementServiceHandler) MarkSettlement(context.Context, *connect.Request[MarkSettlementRequest]) (*connect.Response[MarkSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("resiq.v1.SettlementService.MarkSettlement is not implemented"))
}

func (UnimplementedSettlementServiceHandler) GetRevenueSummary(context.Context, *connect.Request[GetRevenueSummaryRequest]) (*connect.Response[GetRevenueSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("resiq.v1.SettlementService.GetRevenueSummary is not implemented"))
}

func (UnimplementedSettlementServiceHandler) RequestPayout(context.Context, *connect.Request[RequestPayoutRequest]) (*connect.Response[RequestPayoutResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("resiq.v1.SettlementService.RequestPayout is not implemented"))
}

func (UnimplementedSettlementServiceHandler) ListPayoutRequests(context.Context, *connect.Request[ListPayoutRequestsRequest]) (*connect.Response[ListPayoutRequestsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("resiq.v1.SettlementService.ListPayoutRequests is not implemented"))
}

func (UnimplementedSettlementServiceHandler) GetBankDetails(context.Context, *connect.Request[GetBankDetailsRequest]) (*connect.Response[GetBankDetailsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("resiq.v1.SettlementService.GetBankDetails is not implemented"))
}

func (UnimplementedSettlementServiceHandler) SaveBankDetails(context.Context, *connect.Request[SaveBankDetailsRequest]) (*connect.Response[SaveBankDetailsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("resiq.v1.SettlementService.SaveBankDetails is not implemented"))
}
