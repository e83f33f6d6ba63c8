package pool

import (
	"bytes"
	"io"
	"sync"
)

const (
	DocumentBufferDefaultSize  = 1024 * 4        // 4KiB
	DocumentBufferMaxThreshold = 1024 * 1024     // 1MiB
	FeedBufferDefaultSize      = 1024 * 16       // 16KiB
	FeedBufferMaxThreshold     = 1024 * 1024 * 4 // 4MiB

	readChunkSize = 1024 * 4
)

// ByteBuffer is a growable byte slice used for response bodies and the
// changes feed receive buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice. The slice is only valid until the
// next mutation of the buffer.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// IndexByte returns the index of the first c at or after from, or -1.
func (bb *ByteBuffer) IndexByte(from int, c byte) int {
	if from < 0 || from >= len(bb.B) {
		return -1
	}
	i := bytes.IndexByte(bb.B[from:], c)
	if i < 0 {
		return -1
	}

	return from + i
}

// Consume drops the first n bytes and moves the remainder to the front.
// Consuming everything is equivalent to Reset.
func (bb *ByteBuffer) Consume(n int) {
	if n <= 0 {
		return
	}
	if n >= len(bb.B) {
		bb.B = bb.B[:0]
		return
	}
	rest := copy(bb.B, bb.B[n:])
	bb.B = bb.B[:rest]
}

// Grow ensures there is room for at least n more bytes without another
// allocation. Growth at least doubles the capacity.
func (bb *ByteBuffer) Grow(n int) {
	if n <= 0 || cap(bb.B)-len(bb.B) >= n {
		return
	}

	newCap := 2 * cap(bb.B)
	if newCap < len(bb.B)+n {
		newCap = len(bb.B) + n
	}
	grown := make([]byte, len(bb.B), newCap)
	copy(grown, bb.B)
	bb.B = grown
}

// ReadFrom appends everything read from r until EOF.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(readChunkSize)
		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being
// retained, so one huge document does not pin memory for the process lifetime.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	documentDefaultPool = NewByteBufferPool(DocumentBufferDefaultSize, DocumentBufferMaxThreshold)
	feedDefaultPool     = NewByteBufferPool(FeedBufferDefaultSize, FeedBufferMaxThreshold)
)

// GetDocumentBuffer retrieves a ByteBuffer sized for a single document body.
func GetDocumentBuffer() *ByteBuffer {
	return documentDefaultPool.Get()
}

// PutDocumentBuffer returns a ByteBuffer to the document pool.
func PutDocumentBuffer(bb *ByteBuffer) {
	documentDefaultPool.Put(bb)
}

// GetFeedBuffer retrieves a ByteBuffer sized for a changes feed receive buffer.
func GetFeedBuffer() *ByteBuffer {
	return feedDefaultPool.Get()
}

// PutFeedBuffer returns a ByteBuffer to the feed pool.
func PutFeedBuffer(bb *ByteBuffer) {
	feedDefaultPool.Put(bb)
}
