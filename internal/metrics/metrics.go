// Package metrics records gate and settlement telemetry.
package metrics

import "time"

// Well-known counter names.
const (
	EventAccessGranted   = "access_granted"
	EventAccessFree      = "access_free"
	EventChallengeIssued = "challenge_issued"
	EventSettleAccepted  = "settle_accepted"
	EventSettleRejected  = "settle_rejected"
	EventSettleError     = "settle_error"
)

// Recorder counts gate events and observes settlement latency.
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// NoopRecorder discards all telemetry.
type NoopRecorder struct{}

func (NoopRecorder) IncCounter(string, map[string]string)                 {}
func (NoopRecorder) ObserveLatency(string, time.Duration, map[string]string) {}
