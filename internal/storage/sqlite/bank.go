package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hostizzy/resiq/internal/models"
)

// GetBankDetails retrieves the owner's payout details.
func (s *SQLiteStore) GetBankDetails(ctx context.Context, ownerID string) (*models.BankDetails, error) {
	var (
		d                                              models.BankDetails
		holder, account, ifsc, bankName, branch, upiID sql.NullString
		updatedAt                                      string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT owner_id, account_holder_name, bank_account_number, bank_ifsc, bank_name, bank_branch, upi_id, updated_at
		 FROM owner_bank_details WHERE owner_id = ?`,
		ownerID,
	).Scan(&d.OwnerID, &holder, &account, &ifsc, &bankName, &branch, &upiID, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil // Owner never saved details
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bank details: %w", err)
	}

	d.AccountHolderName = holder.String
	d.AccountNumber = account.String
	d.IFSC = ifsc.String
	d.BankName = bankName.String
	d.Branch = branch.String
	d.UPIID = upiID.String
	d.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at for %s: %w", ownerID, err)
	}
	return &d, nil
}

// UpsertBankDetails replaces the owner's payout details.
func (s *SQLiteStore) UpsertBankDetails(ctx context.Context, d *models.BankDetails) error {
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO owner_bank_details
		   (owner_id, account_holder_name, bank_account_number, bank_ifsc, bank_name, bank_branch, upi_id, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(owner_id) DO UPDATE SET
		   account_holder_name = excluded.account_holder_name,
		   bank_account_number = excluded.bank_account_number,
		   bank_ifsc = excluded.bank_ifsc,
		   bank_name = excluded.bank_name,
		   bank_branch = excluded.bank_branch,
		   upi_id = excluded.upi_id,
		   updated_at = excluded.updated_at`,
		d.OwnerID, d.AccountHolderName, d.AccountNumber, d.IFSC, d.BankName, d.Branch, d.UPIID,
		d.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert bank details: %w", err)
	}
	return nil
}
