package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
	"gopkg.in/tomb.v2"

	"github.com/arloliu/pillow/client"
	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/internal/options"
	"github.com/arloliu/pillow/node"
)

//go:generate mockgen -destination=streamer_mock_test.go -package=feed github.com/arloliu/pillow/client Streamer

// ChangesFeed follows the changes feed of a database.
//
// Configuration and Run must not be called concurrently with Run; a second
// concurrent Run fails with errs.ErrRunning. Status may be called at any time.
type ChangesFeed struct {
	streamer client.Streamer

	mu      sync.Mutex
	cfg     Config
	running atomic.Bool
	current atomic.Pointer[run]
}

// run is the state of one Run call.
type run struct {
	id    ulid.ULID
	url   string
	stop  atomic.Bool
	queue *eventQueue
	proc  *processor
}

// New creates a changes feed reading through streamer.
//
// Parameters:
//   - streamer: The transport performing the streaming GET
//   - opts: Feed options; the defaults are one-shot without heartbeats
//
// Returns:
//   - *ChangesFeed: The configured feed
//   - error: errs.ErrInvalidConfig for a nil streamer or an invalid option
func New(streamer client.Streamer, opts ...Option) (*ChangesFeed, error) {
	if streamer == nil {
		return nil, options.Invalidf("streamer must not be nil")
	}

	f := &ChangesFeed{streamer: streamer}
	if err := f.Configure(opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Configure applies opts on top of the current configuration. An invalid
// option leaves the options before it applied.
func (f *ChangesFeed) Configure(opts ...Option) error {
	if f.running.Load() {
		return errs.ErrRunning
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return options.Apply(&f.cfg, opts...)
}

// Config returns a copy of the current configuration.
func (f *ChangesFeed) Config() Config {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cfg
}

// BuildURL returns the URL Run requests for database on server.
func (f *ChangesFeed) BuildURL(server, database string) string {
	return f.Config().BuildURL(server, database)
}

// Status reports the consumer state of the current or last run. It is Stale
// before the first run.
func (f *ChangesFeed) Status() Status {
	r := f.current.Load()
	if r == nil {
		return Stale
	}

	return r.queue.state()
}

// Run reads the changes feed of database on server and dispatches every
// event to the handler, returning once the stream ended and every queued
// event was dispatched.
//
// A handler stop and a cancelled ctx both end the run without error.
//
// Returns:
//   - error: errs.ErrRunning if a run is in progress, or an error wrapping
//     errs.ErrTransport when the stream failed
func (f *ChangesFeed) Run(ctx context.Context, server, database string) error {
	if !f.running.CompareAndSwap(false, true) {
		return errs.ErrRunning
	}
	defer f.running.Store(false)

	cfg := f.Config()
	r := &run{
		id:    ulid.Make(),
		url:   cfg.BuildURL(server, database),
		queue: newEventQueue(),
	}
	r.proc = newProcessor(cfg.Continuous, r.queue, &r.stop, cfg.metrics)
	defer r.proc.release()
	f.current.Store(r)

	cfg.metrics.run(cfg.Continuous)
	logger.Debugf("feed run %s: GET %s (continuous=%t)", r.id, r.url, cfg.Continuous)

	if !cfg.Continuous {
		err := r.produce(ctx, f.streamer)
		r.drain(cfg)

		return err
	}

	var t tomb.Tomb
	t.Go(func() error {
		return r.produce(ctx, f.streamer)
	})
	for r.queue.wait() {
		r.drain(cfg)
	}
	err := t.Wait()
	// Events queued between the last wakeup and the producer exit.
	r.drain(cfg)
	logger.Debugf("feed run %s: finished", r.id)

	return err
}

// produce performs the streaming GET, flushes the receive buffer and closes
// the queue.
func (r *run) produce(ctx context.Context, streamer client.Streamer) error {
	status, err := streamer.Stream(ctx, r.url, r.proc.receive)
	r.proc.flush()
	r.queue.close()

	switch {
	case err == nil:
		logger.Debugf("feed run %s: stream ended with status %d", r.id, status)
		return nil
	case r.stop.Load() || errors.Is(err, errs.ErrAborted):
		logger.Debugf("feed run %s: stream aborted by handler", r.id)
		return nil
	case ctx.Err() != nil:
		logger.Debugf("feed run %s: stream cancelled: %v", r.id, ctx.Err())
		return nil
	default:
		logger.Warningf("feed run %s: stream failed: %v", r.id, err)
		return fmt.Errorf("%w: changes feed %s: %w", errs.ErrTransport, r.url, err)
	}
}

// drain dispatches every queued event. Events queued after a stop request
// are still dispatched.
func (r *run) drain(cfg Config) {
	for {
		event, ok := r.queue.pop()
		if !ok {
			return
		}
		r.dispatch(cfg, event)
	}
}

func (r *run) dispatch(cfg Config, event *node.Node) {
	if cfg.Handler == nil {
		return
	}
	if cfg.Handler(event) < 0 && !r.stop.Swap(true) {
		logger.Debugf("feed run %s: handler requested stop", r.id)
		cfg.metrics.stopped()
	}
}
