package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	stkPushTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "billing",
		Subsystem: "payments",
		Name:      "stk_push_total",
		Help:      "STK push attempts by outcome.",
	}, []string{"outcome"})

	billingAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "billing",
		Subsystem: "payments",
		Name:      "computed_amount",
		Help:      "Amounts produced by the billing calculator.",
		Buckets:   []float64{0, 300, 600, 1000, 2000, 5000, 10000},
	})
)

func init() {
	prometheus.MustRegister(stkPushTotal, billingAmount)
}

func IncSTKPush(outcome string) {
	stkPushTotal.WithLabelValues(outcome).Inc()
}

func ObserveBillingAmount(amount float64) {
	billingAmount.Observe(amount)
}
