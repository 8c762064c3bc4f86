package repository

import (
	"context"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, business_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.Price,
		product.BusinessID,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	product.ID = uint64(id)
	return nil
}

// CountByVendorID counts products across every business the vendor
// owns; plan product limits apply to the vendor as a whole.
func (r *ProductRepository) CountByVendorID(ctx context.Context, vendorID uint64) (int64, error) {
	query := `
		SELECT COUNT(p.id)
		FROM products p
		JOIN businesses b ON p.business_id = b.id
		WHERE b.vendor_id = ?
	`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, vendorID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
