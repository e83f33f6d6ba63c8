package feed

import (
	"bytes"
	"sync/atomic"

	"github.com/arloliu/pillow/codec"
	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/internal/hash"
	"github.com/arloliu/pillow/internal/pool"
	"github.com/arloliu/pillow/node"
)

// processor turns received body bytes into queued events. All its methods
// run on the producer goroutine.
type processor struct {
	continuous bool
	buf        *pool.ByteBuffer
	queue      *eventQueue
	stop       *atomic.Bool
	metrics    *Metrics
}

func newProcessor(continuous bool, queue *eventQueue, stop *atomic.Bool, m *Metrics) *processor {
	return &processor{
		continuous: continuous,
		buf:        pool.GetFeedBuffer(),
		queue:      queue,
		stop:       stop,
		metrics:    m,
	}
}

// receive accepts one chunk of the body. Once a stop was requested it
// refuses the chunk with errs.ErrAborted, which ends the transfer.
func (p *processor) receive(chunk []byte) error {
	if p.stop.Load() {
		return errs.ErrAborted
	}

	logger.Tracef("received %d bytes", len(chunk))
	p.metrics.received(len(chunk))
	_, _ = p.buf.Write(chunk)
	if p.continuous {
		p.carve()
	}

	return nil
}

// carve queues every complete line in the buffer and keeps the unterminated
// tail for the next chunk. It returns the number of queued events.
func (p *processor) carve() int {
	var start, count int
	for {
		end := p.buf.IndexByte(start, '\n')
		if end < 0 {
			break
		}
		p.line(p.buf.Bytes()[start:end])
		start = end + 1
		count++
	}
	p.buf.Consume(start)

	return count
}

func (p *processor) line(rec []byte) {
	rec = bytes.TrimSuffix(rec, []byte{'\r'})
	if len(rec) == 0 {
		p.metrics.event(eventHeartbeat)
		p.queue.push(node.NewNull())

		return
	}

	p.queue.push(p.parse(rec))
}

// parse parses one record. A malformed line of a continuous feed yields
// nil; a malformed one-shot body yields the partial tree built before the
// error, which is nil when nothing could be built.
func (p *processor) parse(data []byte) *node.Node {
	root, err := codec.Parse(data)
	if err != nil || root == nil {
		logger.Debugf("malformed feed record (%d bytes): %v", len(data), err)
		p.metrics.event(eventInvalid)
		if p.continuous {
			return nil
		}

		return root
	}
	p.metrics.event(eventDocument)
	if logger.IsTraceEnabled() {
		logger.Tracef("queued document %s", hash.Hex(codec.Fingerprint(root)))
	}

	return root
}

// flush handles whatever is buffered when the stream ends. A continuous feed
// queues its remaining complete lines and discards an unterminated tail; a
// one-shot feed parses the whole body as one document. Nothing is queued for
// an empty one-shot body.
func (p *processor) flush() {
	defer p.buf.Reset()

	if p.continuous {
		p.carve()
		if p.buf.Len() > 0 {
			logger.Debugf("discarding %d bytes of unterminated feed record", p.buf.Len())
		}

		return
	}
	if p.buf.Len() == 0 {
		return
	}
	p.queue.push(p.parse(p.buf.Bytes()))
}

// release returns the buffer to its pool. The processor must not be used
// afterwards.
func (p *processor) release() {
	pool.PutFeedBuffer(p.buf)
	p.buf = nil
}
