package ringbuf

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrBufferFull is returned by Push when no slot is free.
	ErrBufferFull = errors.New("buffer is full")
	// ErrZeroCapacity is returned by New for a capacity below one.
	ErrZeroCapacity = errors.New("buffer capacity must be positive")
)

// ------|+++++++++++++++++|--------------------|
//      head             tail               capacity
// head < capacity; tail < capacity
// head == tail is both empty and full, size tells them apart

// RingBuffer is a fixed-capacity FIFO of bytes. It is not safe for
// concurrent use.
type RingBuffer struct {
	buff     []byte
	capacity int
	head     int
	tail     int
	size     int
}

// New allocates a buffer holding up to capacity bytes. A capacity <= 0 is
// rejected with ErrZeroCapacity.
func New(capacity int) (*RingBuffer, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrZeroCapacity, "capacity %d", capacity)
	}
	return &RingBuffer{
		buff:     make([]byte, capacity),
		capacity: capacity,
	}, nil
}

// MustNew is like New but panics if capacity is not positive.
func MustNew(capacity int) *RingBuffer {
	rb, err := New(capacity)
	if err != nil {
		panic(err)
	}
	return rb
}

// IsEmpty reports whether there is nothing to pop.
func (rb *RingBuffer) IsEmpty() bool {
	return rb.size == 0
}

// IsFull reports whether the next Push would fail.
func (rb *RingBuffer) IsFull() bool {
	return rb.size == rb.capacity
}

// Len returns the number of bytes waiting to be read.
func (rb *RingBuffer) Len() int {
	return rb.size
}

// Cap returns the fixed capacity given to New.
func (rb *RingBuffer) Cap() int {
	return rb.capacity
}

// Gets the available write space
func (rb *RingBuffer) FreeSpace() int {
	return rb.capacity - rb.size
}

// Push appends b at the tail. On a full buffer it returns ErrBufferFull and
// leaves the buffer untouched.
func (rb *RingBuffer) Push(b byte) error {
	if rb.IsFull() {
		return ErrBufferFull
	}

	rb.buff[rb.tail] = b
	rb.tail = (rb.tail + 1) % rb.capacity
	rb.size++
	return nil
}

// Pop removes the oldest byte. ok is false when the buffer is empty.
func (rb *RingBuffer) Pop() (b byte, ok bool) {
	if rb.IsEmpty() {
		return 0, false
	}

	b = rb.buff[rb.head]
	rb.buff[rb.head] = 0
	rb.head = (rb.head + 1) % rb.capacity
	rb.size--
	return b, true
}

// Extend pushes data in order until the buffer fills up and returns how many
// bytes were taken.
func (rb *RingBuffer) Extend(data []byte) int {
	n := 0
	for _, b := range data {
		if rb.Push(b) != nil {
			break
		}
		n++
	}
	return n
}

// Drain pops up to count bytes, oldest first. The result is shorter than
// count when the buffer runs empty.
func (rb *RingBuffer) Drain(count int) []byte {
	if count <= 0 {
		return []byte{}
	}
	out := make([]byte, 0, min(count, rb.size))
	for i := 0; i < count; i++ {
		b, ok := rb.Pop()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return out
}

// Bytes returns a copy of the buffered bytes, oldest first, without
// consuming them.
func (rb *RingBuffer) Bytes() []byte {
	if rb.size == 0 {
		return nil
	}

	buf := make([]byte, rb.size)
	end := rb.head + rb.size
	if end <= rb.capacity {
		copy(buf, rb.buff[rb.head:end])
		return buf
	}
	// wrapped: [head, capacity) then [0, tail)
	n := copy(buf, rb.buff[rb.head:])
	copy(buf[n:], rb.buff[:rb.tail])
	return buf
}

// String renders occupancy and index positions for debugging.
func (rb *RingBuffer) String() string {
	return fmt.Sprintf("ringbuf[len=%d cap=%d head=%d tail=%d]", rb.size, rb.capacity, rb.head, rb.tail)
}
