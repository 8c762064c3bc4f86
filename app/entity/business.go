package entity

import "time"

type Business struct {
	ID        uint64
	Name      string
	Address   string
	VendorID  uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Branch struct {
	ID         uint64
	Name       string
	Address    string
	BusinessID uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
