package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shape_shop"

var (
	Predictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Successful classifications by body shape.",
	}, []string{"shape"})

	ClassificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classification_failures_total",
		Help:      "Classifier calls that failed or timed out.",
	})

	PredictionPersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prediction_persist_failures_total",
		Help:      "Predictions returned to the user but not stored.",
	})

	ClassifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "classify_duration_seconds",
		Help:      "Latency of classifier calls.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	})

	CartAdds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_adds_total",
		Help:      "Units added to carts.",
	})

	Checkouts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Completed checkouts that cleared a non-empty cart.",
	})

	PurchasesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_recorded_total",
		Help:      "Checkout events consumed into the ledger by outcome.",
	}, []string{"outcome"})
)
