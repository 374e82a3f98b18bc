package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hostizzy/resiq/internal/models"
)

// GetSettlementStatus retrieves the completion entry for one owner and month.
func (s *SQLiteStore) GetSettlementStatus(ctx context.Context, ownerID, monthKey string) (*models.SettlementStatusEntry, error) {
	entry := &models.SettlementStatusEntry{}
	var completedAt, settlementType string

	err := s.db.QueryRowContext(ctx,
		`SELECT owner_id, settlement_month, status, completed_at, settlement_type
		 FROM owner_settlements WHERE owner_id = ? AND settlement_month = ?`,
		ownerID, monthKey,
	).Scan(&entry.OwnerID, &entry.SettlementMonth, &entry.Status, &completedAt, &settlementType)

	if err == sql.ErrNoRows {
		return nil, nil // Month never marked
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement status: %w", err)
	}

	if err := fillEntry(entry, completedAt, settlementType); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListSettlementStatuses retrieves the owner's entries within [fromKey, toKey].
func (s *SQLiteStore) ListSettlementStatuses(ctx context.Context, ownerID, fromKey, toKey string) ([]models.SettlementStatusEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT owner_id, settlement_month, status, completed_at, settlement_type
		 FROM owner_settlements
		 WHERE owner_id = ? AND settlement_month >= ? AND settlement_month <= ?
		 ORDER BY settlement_month`,
		ownerID, fromKey, toKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement statuses: %w", err)
	}
	defer rows.Close()

	entries := []models.SettlementStatusEntry{}
	for rows.Next() {
		var entry models.SettlementStatusEntry
		var completedAt, settlementType string
		if err := rows.Scan(&entry.OwnerID, &entry.SettlementMonth, &entry.Status, &completedAt, &settlementType); err != nil {
			return nil, fmt.Errorf("failed to scan settlement status: %w", err)
		}
		if err := fillEntry(&entry, completedAt, settlementType); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlement statuses: %w", err)
	}

	return entries, nil
}

// UpsertSettlementStatus writes the entry, replacing any earlier one for the same key.
func (s *SQLiteStore) UpsertSettlementStatus(ctx context.Context, entry *models.SettlementStatusEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO owner_settlements (owner_id, settlement_month, status, completed_at, settlement_type)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (owner_id, settlement_month) DO UPDATE SET
		     status = excluded.status,
		     completed_at = excluded.completed_at,
		     settlement_type = excluded.settlement_type`,
		entry.OwnerID, entry.SettlementMonth, entry.Status,
		entry.CompletedAt.UTC().Format(time.RFC3339Nano), string(entry.SettlementType),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert settlement status: %w", err)
	}
	return nil
}

func fillEntry(entry *models.SettlementStatusEntry, completedAt, settlementType string) error {
	t, err := time.Parse(time.RFC3339Nano, completedAt)
	if err != nil {
		return fmt.Errorf("failed to parse completed_at for %s/%s: %w", entry.OwnerID, entry.SettlementMonth, err)
	}
	entry.CompletedAt = t
	entry.SettlementType = models.SettlementType(settlementType)
	return nil
}
