package dto

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type VendorResponse struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type BusinessResponse struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	VendorID uint64 `json:"vendor_id"`
}

type BranchResponse struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	BusinessID uint64 `json:"business_id"`
}

type ProductResponse struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	BusinessID uint64  `json:"business_id"`
}

type SubscriptionResponse struct {
	ID          uint64 `json:"id"`
	VendorID    uint64 `json:"vendor_id"`
	Plan        string `json:"plan"`
	Price       int64  `json:"price"`
	MaxProducts *int64 `json:"max_products"` // null means unlimited
	StartDate   string `json:"start_date"`
}

type PlanResponse struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	MaxProducts *int64 `json:"max_products"`
}

type PaymentResponse struct {
	ID            uint64 `json:"id"`
	VendorID      uint64 `json:"vendor_id"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
}

type VendorOverviewResponse struct {
	Vendor        VendorResponse         `json:"vendor"`
	Businesses    []BusinessResponse     `json:"businesses"`
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

type BillingTotalResponse struct {
	VendorID uint64 `json:"vendor_id"`
	Amount   int64  `json:"amount"`
}
