package repository

import (
	"context"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
)

type BranchRepository struct {
	db DBTX
}

func NewBranchRepository(db DBTX) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (name, address, business_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		branch.Name,
		branch.Address,
		branch.BusinessID,
		branch.CreatedAt,
		branch.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	branch.ID = uint64(id)
	return nil
}

// CountByVendorID counts branches across every business the vendor
// owns; billing charges the branch fee once per branch.
func (r *BranchRepository) CountByVendorID(ctx context.Context, vendorID uint64) (int64, error) {
	query := `
		SELECT COUNT(br.id)
		FROM branches br
		JOIN businesses b ON br.business_id = b.id
		WHERE b.vendor_id = ?
	`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, vendorID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
