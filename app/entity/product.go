package entity

import "time"

type Product struct {
	ID         uint64
	Name       string
	Price      float64
	BusinessID uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
