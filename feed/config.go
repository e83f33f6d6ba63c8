package feed

import (
	"github.com/arloliu/pillow/internal/options"
	"github.com/arloliu/pillow/node"
)

// Handler receives one feed event.
//
// event is a Map for a change record, a Null node for a heartbeat and nil
// for a record that could not be parsed. Returning a negative value stops
// the feed.
type Handler func(event *node.Node) int

// Config holds the settings of a changes feed.
type Config struct {
	// Continuous keeps the request open and delivers records as they arrive.
	Continuous bool
	// HeartbeatMillis asks the server for a blank line every interval.
	// Zero disables heartbeats.
	HeartbeatMillis int
	// ExtraOptions is appended verbatim to the query string, for example
	// "since=42&include_docs=true". It is not escaped.
	ExtraOptions string
	// Handler receives every event. Events are discarded when it is nil.
	Handler Handler

	metrics *Metrics
}

// Option represents a functional option for configuring a changes feed.
type Option = options.Option[*Config]

// WithContinuous selects continuous or one-shot mode.
func WithContinuous(continuous bool) Option {
	return options.NoError(func(c *Config) {
		c.Continuous = continuous
	})
}

// WithHeartbeat sets the heartbeat interval in milliseconds. Zero disables
// heartbeats; negative values are rejected.
func WithHeartbeat(ms int) Option {
	return options.New(func(c *Config) error {
		if ms < 0 {
			return options.Invalidf("heartbeat must not be negative, got %d", ms)
		}
		c.HeartbeatMillis = ms

		return nil
	})
}

// WithExtraOptions sets the query string fragment appended to the feed URL.
func WithExtraOptions(extra string) Option {
	return options.NoError(func(c *Config) {
		c.ExtraOptions = extra
	})
}

// WithHandler registers the event handler.
func WithHandler(h Handler) Option {
	return options.NoError(func(c *Config) {
		c.Handler = h
	})
}

// WithMetrics records feed activity in m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return options.NoError(func(c *Config) {
		c.metrics = m
	})
}
