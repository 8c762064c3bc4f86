package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
)

var ErrVendorAlreadyExists = errors.New("vendor already exists")

type VendorRepository struct {
	db DBTX
}

func NewVendorRepository(db DBTX) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (email, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		vendor.Email,
		vendor.Name,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrVendorAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	vendor.ID = uint64(id)
	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uint64) (*entity.Vendor, error) {
	query := `
		SELECT id, email, name, created_at, updated_at
		FROM vendors
		WHERE id = ?
	`

	item := &entity.Vendor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Email,
		&item.Name,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}
