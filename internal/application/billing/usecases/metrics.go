package usecases

// Metrics receives billing outcomes. The prometheus implementation lives in
// infrastructure/metrics.
type Metrics interface {
	EntryRecorded(tier string, travel, internal bool)
	InternalCapTruncated()
	InternalCapRejected()
	TeamClamped()
	UnknownRate(tier string)
}

type NopMetrics struct{}

func (NopMetrics) EntryRecorded(string, bool, bool) {}
func (NopMetrics) InternalCapTruncated() {}
func (NopMetrics) InternalCapRejected() {}
func (NopMetrics) TeamClamped() {}
func (NopMetrics) UnknownRate(string) {}
