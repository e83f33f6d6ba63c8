package feed

// Status describes the consumer side of a run.
type Status int32

const (
	// Stale is the initial state, re-entered each time the consumer wakes up.
	Stale Status = iota
	// Waiting means the consumer is blocked until records are queued.
	Waiting
	// Ready means records were queued while the consumer was waiting.
	Ready
	// Done means the stream ended. It is terminal for the run.
	Done
)

func (s Status) String() string {
	switch s {
	case Stale:
		return "stale"
	case Waiting:
		return "waiting"
	case Ready:
		return "ready"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
