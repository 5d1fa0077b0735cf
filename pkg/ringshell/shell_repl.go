package ringshell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bytering/pkg/repl"

	"github.com/pkg/errors"
)

func RingRepl(s *Shell) *repl.REPL {
	r := repl.NewRepl()
	r.AddCommand("push", s.pushHandler(), "Pushes one byte at the tail. usage: push <byte>")
	r.AddCommand("pop", s.popHandler(), "Pops the oldest byte. usage: pop")
	r.AddCommand("extend", s.extendHandler(), "Pushes bytes in order, the rest go to the backlog. usage: extend <byte> [byte ...]")
	r.AddCommand("drain", s.drainHandler(), "Pops up to n bytes and refills from the backlog. usage: drain <n>")
	r.AddCommand("flush", s.flushHandler(), "Moves backlog bytes into the buffer. usage: flush")
	r.AddCommand("info", s.infoHandler(), "Prints buffer occupancy. usage: info")
	r.AddCommand("peek", s.peekHandler(), "Prints buffered bytes without removing them. usage: peek")
	r.AddCommand("backlog", s.backlogHandler(), "Prints bytes waiting for space. usage: backlog")
	return r
}

func (s *Shell) pushHandler() func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		args := strings.Fields(input)
		if len(args) != 2 {
			return errors.Errorf("usage: push <byte>")
		}
		b, err := parseByte(args[1])
		if err != nil {
			return err
		}
		return s.Buf.Push(b)
	}
}

func (s *Shell) popHandler() func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		args := strings.Fields(input)
		if len(args) != 1 {
			return errors.Errorf("usage: pop")
		}
		b, ok := s.Buf.Pop()
		if !ok {
			_, err := io.WriteString(config.Writer, "empty\n")
			return err
		}
		s.Flush()
		_, err := fmt.Fprintf(config.Writer, "%d\n", b)
		return err
	}
}

func (s *Shell) extendHandler() func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		args := strings.Fields(input)
		if len(args) < 2 {
			return errors.Errorf("usage: extend <byte> [byte ...]")
		}
		data, err := parseBytes(args[1:])
		if err != nil {
			return err
		}
		inserted, parked := s.Offer(data)
		_, err = fmt.Fprintf(config.Writer, "inserted %d, backlogged %d\n", inserted, parked)
		return err
	}
}

func (s *Shell) drainHandler() func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		args := strings.Fields(input)
		if len(args) != 2 {
			return errors.Errorf("usage: drain <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "invalid count %q", args[1])
		}
		_, err = io.WriteString(config.Writer, formatBytes(s.Take(n)))
		return err
	}
}

func (s *Shell) flushHandler() func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		_, err := fmt.Fprintf(config.Writer, "flushed %d, backlog %d\n", s.Flush(), s.backlog.Len())
		return err
	}
}

func (s *Shell) infoHandler() func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		_, err := io.WriteString(config.Writer, "Len\tCap\tFree\tState\n")
		if err != nil {
			return errors.Wrap(err, "infoHandler cannot write the header")
		}
		_, err = io.WriteString(config.Writer, s.GetInfoString())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(config.Writer, s.Buf)
		return err
	}
}

func (s *Shell) peekHandler() func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		_, err := io.WriteString(config.Writer, formatBytes(s.Buf.Bytes()))
		return err
	}
}

func (s *Shell) backlogHandler() func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		_, err := io.WriteString(config.Writer, formatBytes(s.Backlog()))
		return err
	}
}
