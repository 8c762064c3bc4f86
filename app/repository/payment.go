package repository

import (
	"context"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (vendor_id, amount, payment_method, payment_date)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		payment.VendorID,
		payment.Amount,
		payment.PaymentMethod,
		payment.PaymentDate,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	payment.ID = uint64(id)
	return nil
}

func (r *PaymentRepository) ListByVendorID(ctx context.Context, vendorID uint64) ([]*entity.Payment, error) {
	query := `
		SELECT id, vendor_id, amount, payment_method, payment_date
		FROM payments
		WHERE vendor_id = ?
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Payment, 0)
	for rows.Next() {
		item := &entity.Payment{}
		if err := rows.Scan(&item.ID, &item.VendorID, &item.Amount, &item.PaymentMethod, &item.PaymentDate); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
