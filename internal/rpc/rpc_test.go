package rpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
)

type echoPayout struct {
	UnimplementedSettlementServiceHandler
}

func (echoPayout) RequestPayout(ctx context.Context, req *connect.Request[RequestPayoutRequest]) (*connect.Response[RequestPayoutResponse], error) {
	return connect.NewResponse(&RequestPayoutResponse{
		Payout: &Payout{
			ID:         "P-1",
			Amount:     req.Msg.Amount,
			Method:     req.Msg.Method,
			OwnerNotes: req.Msg.Notes,
			Status:     "pending",
		},
	}), nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	path, handler := NewSettlementServiceHandler(echoPayout{})
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientHandlerRoundTrip(t *testing.T) {
	server := newServer(t)
	client := NewSettlementServiceClient(http.DefaultClient, server.URL+"/")

	resp, err := client.RequestPayout(context.Background(), connect.NewRequest(&RequestPayoutRequest{
		Amount: decimal.RequireFromString("1234.56"),
		Method: "upi",
		Notes:  "rent",
	}))
	if err != nil {
		t.Fatalf("RequestPayout failed: %v", err)
	}
	if !resp.Msg.Payout.Amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("amount: expected 1234.56, got %s", resp.Msg.Payout.Amount)
	}
	if resp.Msg.Payout.Method != "upi" || resp.Msg.Payout.OwnerNotes != "rent" {
		t.Errorf("unexpected payout: %+v", resp.Msg.Payout)
	}
}

func TestUnimplemented(t *testing.T) {
	server := newServer(t)
	client := NewSettlementServiceClient(http.DefaultClient, server.URL)

	_, err := client.ListSettlements(context.Background(), connect.NewRequest(&ListSettlementsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnimplemented {
		t.Errorf("expected unimplemented, got %v", err)
	}
}

func TestPlainJSONRequest(t *testing.T) {
	server := newServer(t)

	body := `{"amount": 500, "method": "bank_transfer"}`
	resp, err := http.Post(server.URL+SettlementServiceRequestPayoutProcedure, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestUnknownProcedure(t *testing.T) {
	server := newServer(t)

	resp, err := http.Post(server.URL+"/resiq.v1.SettlementService/DeleteEverything", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
