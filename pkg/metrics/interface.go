package metrics

import "time"

// Collector is the recording surface used by the gateway and the backends.
// It is implemented by *Metrics.
type Collector interface {
	IncrementRequests(method, code string)
	RecordRequestDuration(start time.Time, method string)
	TrackInFlight(method string) func()
	ObserveBackendCall(operation, outcome string, d time.Duration)
}

var _ Collector = (*Metrics)(nil)
