package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
)

type BusinessRepository struct {
	db DBTX
}

func NewBusinessRepository(db DBTX) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	query := `
		INSERT INTO businesses (name, address, vendor_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		business.Name,
		business.Address,
		business.VendorID,
		business.CreatedAt,
		business.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	business.ID = uint64(id)
	return nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id uint64) (*entity.Business, error) {
	query := `
		SELECT id, name, address, vendor_id, created_at, updated_at
		FROM businesses
		WHERE id = ?
	`

	item := &entity.Business{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Address,
		&item.VendorID,
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

func (r *BusinessRepository) ListByVendorID(ctx context.Context, vendorID uint64) ([]*entity.Business, error) {
	query := `
		SELECT id, name, address, vendor_id, created_at, updated_at
		FROM businesses
		WHERE vendor_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Business, 0)
	for rows.Next() {
		item := &entity.Business{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Address, &item.VendorID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
