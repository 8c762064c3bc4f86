package entity

// ProductLimit is the number of products a plan allows. Unlimited
// plans carry no numeric cap at all rather than a sentinel value.
type ProductLimit struct {
	Unlimited bool
	Max       int64
}

func LimitedProducts(max int64) ProductLimit {
	return ProductLimit{Max: max}
}

func UnlimitedProducts() ProductLimit {
	return ProductLimit{Unlimited: true}
}

// Allows reports whether a vendor holding count products may add one more.
func (l ProductLimit) Allows(count int64) bool {
	return l.Unlimited || count < l.Max
}

type Plan struct {
	Name        string
	Price       int64
	MaxProducts ProductLimit
}

const (
	PlanStarter    = "starter"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// The plan table is fixed; plans are not user-extensible.
var plans = []Plan{
	{Name: PlanStarter, Price: 300, MaxProducts: LimitedProducts(10)},
	{Name: PlanPro, Price: 400, MaxProducts: LimitedProducts(100)},
	{Name: PlanEnterprise, Price: 600, MaxProducts: UnlimitedProducts()},
}

func PlanByName(name string) (Plan, bool) {
	for _, p := range plans {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}

func Plans() []Plan {
	result := make([]Plan, len(plans))
	copy(result, plans)
	return result
}
