package entity

import "time"

// Subscription is a plan a vendor has signed up for. Price and
// MaxProducts are derived from the plan table at creation time, never
// taken from the client. A vendor may hold several subscriptions at
// once; billing sums all of them.
type Subscription struct {
	ID          uint64
	VendorID    uint64
	Plan        string
	Price       int64
	MaxProducts ProductLimit
	StartDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Payment struct {
	ID            uint64
	VendorID      uint64
	Amount        int64
	PaymentMethod string
	PaymentDate   time.Time
}
