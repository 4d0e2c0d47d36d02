package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations by operation and result",
		},
		[]string{"op", "result"}, // op: add|remove|update|clear; result: applied|rejected|noop
	)
	CartItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_items",
			Help: "Number of line items currently in the cart",
		},
	)
)

var (
	CheckoutSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Checkout submissions by result",
		},
		[]string{"result"}, // accepted|rejected|failed
	)
	PixPolls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_polls_total",
			Help: "PIX status polls by result",
		},
		[]string{"result"}, // pending|paid|terminal|error
	)
	PixWatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_watches_total",
			Help: "Finished PIX watch sessions by outcome",
		},
		[]string{"outcome"}, // confirmed|failed|timeout|canceled
	)
)

func MustRegister() {
	prometheus.MustRegister(CartOps, CartItems, CheckoutSubmissions, PixPolls, PixWatches)
}
