package entity

import "time"

type Vendor struct {
	ID        uint64
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
