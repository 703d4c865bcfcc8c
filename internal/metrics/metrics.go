package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	performsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortcuts_performs_total",
			Help: "Total shortcut performs by action",
		},
		[]string{"action"},
	)

	donationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortcuts_donations_total",
			Help: "Total intent donations by kind",
		},
		[]string{"kind"},
	)

	donationErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shortcuts_donation_errors_total",
			Help: "Total failed intent donation submissions",
		},
	)

	dispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shortcuts_dispatch_duration_seconds",
			Help:    "Time spent performing a shortcut",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	registerOnce sync.Once
)

// Init registers the collectors. Must be called once at startup.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			performsTotal,
			donationsTotal,
			donationErrorsTotal,
			dispatchDuration,
		)
	})
}

// RecordPerform counts one shortcut perform and its duration.
func RecordPerform(action string, elapsed time.Duration) {
	performsTotal.WithLabelValues(action).Inc()
	dispatchDuration.WithLabelValues(action).Observe(elapsed.Seconds())
}

// RecordDonation counts one intent donation.
func RecordDonation(kind string) {
	donationsTotal.WithLabelValues(kind).Inc()
}

// RecordDonationError counts one failed donation submission.
func RecordDonationError() {
	donationErrorsTotal.Inc()
}
