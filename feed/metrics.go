package feed

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "pillow_changes_feed"

// Event kinds reported by the events counter.
const (
	eventDocument  = "document"
	eventHeartbeat = "heartbeat"
	eventInvalid   = "invalid"
)

// Metrics is a prometheus.Collector recording changes feed activity.
//
// One Metrics may be shared by several feeds. Register it with a
// prometheus.Registerer to export it.
type Metrics struct {
	events        *prometheus.CounterVec
	receivedBytes prometheus.Counter
	runs          *prometheus.CounterVec
	stops         prometheus.Counter
}

var _ prometheus.Collector = (*Metrics)(nil)

// NewMetrics returns a new Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "events_total",
				Help:      "The number of queued feed events by kind.",
			}, []string{"kind"},
		),
		receivedBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "received_bytes_total",
				Help:      "The number of body bytes accepted from the server.",
			},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "runs_total",
				Help:      "The number of started feed runs by mode.",
			}, []string{"mode"},
		),
		stops: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "handler_stops_total",
				Help:      "The number of runs stopped early by the handler.",
			},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.events.Describe(ch)
	m.receivedBytes.Describe(ch)
	m.runs.Describe(ch)
	m.stops.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.events.Collect(ch)
	m.receivedBytes.Collect(ch)
	m.runs.Collect(ch)
	m.stops.Collect(ch)
}

func (m *Metrics) event(kind string) {
	if m != nil {
		m.events.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) received(n int) {
	if m != nil {
		m.receivedBytes.Add(float64(n))
	}
}

func (m *Metrics) run(continuous bool) {
	if m == nil {
		return
	}
	mode := "oneshot"
	if continuous {
		mode = "continuous"
	}
	m.runs.WithLabelValues(mode).Inc()
}

func (m *Metrics) stopped() {
	if m != nil {
		m.stops.Inc()
	}
}
