package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hostizzy/resiq/internal/models"
)

var bankColumns = []string{
	"account_holder_name",
	"bank_account_number",
	"bank_ifsc",
	"bank_name",
	"bank_branch",
	"upi_id",
	"updated_at",
}

// GetBankDetails reads the payout columns of the owner's row.
func (s *Store) GetBankDetails(ctx context.Context, ownerID string) (*models.BankDetails, error) {
	var row ownerRow
	err := s.db.WithContext(ctx).
		Select(append([]string{"id"}, bankColumns...)).
		Where("id = ?", ownerID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bank details: %w", err)
	}
	return &models.BankDetails{
		OwnerID:           row.ID,
		AccountHolderName: row.AccountHolderName.String,
		AccountNumber:     row.BankAccountNumber.String,
		IFSC:              row.BankIFSC.String,
		BankName:          row.BankName.String,
		Branch:            row.BankBranch.String,
		UPIID:             row.UPIID.String,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

// UpsertBankDetails writes the payout columns, leaving the rest of the
// owner's row alone.
func (s *Store) UpsertBankDetails(ctx context.Context, d *models.BankDetails) error {
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now().UTC()
	}
	row := ownerRow{
		ID:                d.OwnerID,
		AccountHolderName: nullString(d.AccountHolderName),
		BankAccountNumber: nullString(d.AccountNumber),
		BankIFSC:          nullString(d.IFSC),
		BankName:          nullString(d.BankName),
		BankBranch:        nullString(d.Branch),
		UPIID:             nullString(d.UPIID),
		UpdatedAt:         d.UpdatedAt,
	}
	if err := upsertBankDetails(s.db.WithContext(ctx), &row).Error; err != nil {
		return fmt.Errorf("failed to upsert bank details: %w", err)
	}
	return nil
}

func upsertBankDetails(tx *gorm.DB, row *ownerRow) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(bankColumns),
	}).Create(row)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
