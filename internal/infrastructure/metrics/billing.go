// Package metrics exposes billing outcomes as prometheus counters.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hartlaw/hartlaw/internal/application/billing/usecases"
)

const (
	namespace = "hartlaw"
	subsystem = "billing"
)

var _ usecases.Metrics = (*BillingMetrics)(nil)

type BillingMetrics struct {
	// entriesRecorded labels: tier, travel, internal
	entriesRecorded *prometheus.CounterVec
	capTruncated    prometheus.Counter
	capRejected     prometheus.Counter
	teamClamped     prometheus.Counter
	// unknownRates labels: tier
	unknownRates *prometheus.CounterVec
}

// NewBillingMetrics registers the billing counters with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewBillingMetrics(reg prometheus.Registerer) *BillingMetrics {
	factory := promauto.With(reg)
	return &BillingMetrics{
		entriesRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "time_entries_total",
			Help:      "Time entries written to the ledger",
		}, []string{"tier", "travel", "internal"}),
		capTruncated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "internal_cap_truncated_total",
			Help:      "Internal conference entries shortened to the remaining daily allowance",
		}),
		capRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "internal_cap_rejected_total",
			Help:      "Internal conference entries rejected because the daily cap was used up",
		}),
		teamClamped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "team_clamped_total",
			Help:      "Entries whose team size was reduced to the simultaneous billable maximum",
		}),
		unknownRates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "unknown_rate_total",
			Help:      "Entries billed at zero USD because no rate exists for the role and tier",
		}, []string{"tier"}),
	}
}

func (m *BillingMetrics) EntryRecorded(tier string, travel, internal bool) {
	m.entriesRecorded.WithLabelValues(tier, strconv.FormatBool(travel), strconv.FormatBool(internal)).Inc()
}

func (m *BillingMetrics) InternalCapTruncated() { m.capTruncated.Inc() }

func (m *BillingMetrics) InternalCapRejected() { m.capRejected.Inc() }

func (m *BillingMetrics) TeamClamped() { m.teamClamped.Inc() }

func (m *BillingMetrics) UnknownRate(tier string) {
	m.unknownRates.WithLabelValues(tier).Inc()
}
