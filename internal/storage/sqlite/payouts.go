package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hostizzy/resiq/internal/models"
)

// CreatePayoutRequest persists a new payout request.
func (s *SQLiteStore) CreatePayoutRequest(ctx context.Context, req *models.PayoutRequest) error {
	// Generate ID if not set
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.RequestedAt == 0 {
		req.RequestedAt = time.Now().Unix()
	}

	var notes interface{} = nil
	if req.OwnerNotes != "" {
		notes = req.OwnerNotes
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payout_requests (id, owner_id, amount, payout_method, owner_notes, status, requested_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.OwnerID, req.Amount.String(), string(req.Method), notes,
		string(req.Status), req.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payout request: %w", err)
	}

	return nil
}

// ListPayoutRequests retrieves all payout requests for an owner, newest first.
func (s *SQLiteStore) ListPayoutRequests(ctx context.Context, ownerID string) ([]models.PayoutRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, amount, payout_method, owner_notes, status, requested_at
		 FROM payout_requests WHERE owner_id = ? ORDER BY requested_at DESC, id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payout requests: %w", err)
	}
	defer rows.Close()

	payouts := []models.PayoutRequest{}
	for rows.Next() {
		var (
			p                     models.PayoutRequest
			amount, method, status string
			notes                 sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.OwnerID, &amount, &method, &notes, &status, &p.RequestedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payout request: %w", err)
		}

		p.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse payout amount for %s: %w", p.ID, err)
		}
		p.Method = models.PayoutMethod(method)
		p.Status = models.PayoutStatus(status)
		if notes.Valid {
			p.OwnerNotes = notes.String
		}
		payouts = append(payouts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payout requests: %w", err)
	}

	return payouts, nil
}
