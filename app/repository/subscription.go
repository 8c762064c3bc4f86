package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
)

type SubscriptionRepository struct {
	db DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (vendor_id, plan, price, max_products, start_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		subscription.VendorID,
		subscription.Plan,
		subscription.Price,
		nullableProductLimitValue(subscription.MaxProducts),
		subscription.StartDate,
		subscription.CreatedAt,
		subscription.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	subscription.ID = uint64(id)
	return nil
}

func (r *SubscriptionRepository) ListByVendorID(ctx context.Context, vendorID uint64) ([]*entity.Subscription, error) {
	query := `
		SELECT id, vendor_id, plan, price, max_products, start_date, created_at, updated_at
		FROM subscriptions
		WHERE vendor_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Subscription, 0)
	for rows.Next() {
		item, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanSubscription(rows *sql.Rows) (*entity.Subscription, error) {
	item := &entity.Subscription{}
	var maxProducts sql.NullInt64

	err := rows.Scan(
		&item.ID,
		&item.VendorID,
		&item.Plan,
		&item.Price,
		&maxProducts,
		&item.StartDate,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL max_products means the plan is unlimited.
	if maxProducts.Valid {
		item.MaxProducts = entity.LimitedProducts(maxProducts.Int64)
	} else {
		item.MaxProducts = entity.UnlimitedProducts()
	}

	return item, nil
}

func nullableProductLimitValue(limit entity.ProductLimit) interface{} {
	if limit.Unlimited {
		return nil
	}
	return limit.Max
}
