package ringshell

import (
	"log"
	"os"
	"strconv"

	"bytering/pkg/ringbuf"

	deque "github.com/gammazero/deque"
	"github.com/pkg/errors"
)

var logger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)

// Shell owns a ring buffer plus the bytes a producer could not fit into it.
// The backlog is drained into the buffer as space frees up.
type Shell struct {
	Buf     *ringbuf.RingBuffer
	backlog *deque.Deque[byte]
}

func New(capacity int) (*Shell, error) {
	rb, err := ringbuf.New(capacity)
	if err != nil {
		return nil, err
	}
	return &Shell{Buf: rb, backlog: deque.New[byte]()}, nil
}

// Offer inserts as much of data as fits and parks the rest in the backlog.
// Anything already waiting in the backlog goes first so ordering holds.
func (s *Shell) Offer(data []byte) (inserted int, parked int) {
	s.Flush()
	if s.backlog.Len() == 0 {
		inserted = s.Buf.Extend(data)
		data = data[inserted:]
	}
	for _, b := range data {
		s.backlog.PushBack(b)
	}
	if len(data) > 0 {
		logger.Printf("buffer full, %d bytes parked in backlog (%d pending)\n", len(data), s.backlog.Len())
	}
	return inserted, len(data)
}

// Flush moves backlog bytes into the buffer until it is full.
func (s *Shell) Flush() int {
	n := 0
	for s.backlog.Len() > 0 {
		if s.Buf.Push(s.backlog.Front()) != nil {
			break
		}
		s.backlog.PopFront()
		n++
	}
	return n
}

// Take drains up to count bytes and refills from the backlog.
func (s *Shell) Take(count int) []byte {
	out := s.Buf.Drain(count)
	s.Flush()
	return out
}

func (s *Shell) Backlog() []byte {
	res := make([]byte, s.backlog.Len())
	for i := range res {
		res[i] = s.backlog.At(i)
	}
	return res
}

// parseByte accepts decimal or 0x-prefixed hex values in [0, 255].
func parseByte(arg string) (byte, error) {
	v, err := strconv.ParseUint(arg, 0, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid byte %q", arg)
	}
	return byte(v), nil
}

func parseBytes(args []string) ([]byte, error) {
	res := make([]byte, len(args))
	for i, a := range args {
		b, err := parseByte(a)
		if err != nil {
			return nil, err
		}
		res[i] = b
	}
	return res, nil
}
