package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"bytering/pkg/repl"
	"bytering/pkg/ringbuf"
	"bytering/pkg/ringshell"

	"github.com/pkg/errors"
)

func main() {
	capacity := flag.Int("capacity", 3, "ring buffer capacity in bytes")
	interactive := flag.Bool("repl", false, "start an interactive shell instead of the demo")
	history := flag.String("history", "", "readline history file for the shell")
	flag.Parse()

	if !*interactive {
		if err := runDemo(os.Stdout, *capacity); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	shell, err := ringshell.New(*capacity)
	if err != nil {
		fmt.Println("usage: ringbuf [--capacity <n>] [--repl] [--history <file>]")
		fmt.Println(err)
		os.Exit(1)
	}
	r := ringshell.RingRepl(shell)
	if err := r.Run(repl.Config{Prompt: "> ", HistoryFile: *history}); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// demo values are multiples of ten, the overflow push included
const maxDemoCapacity = 255/10 - 1

// runDemo fills a buffer, shows the overflow failure, then reads it back.
func runDemo(w io.Writer, capacity int) error {
	if capacity > maxDemoCapacity {
		return errors.Errorf("demo capacity %d exceeds %d", capacity, maxDemoCapacity)
	}
	rb, err := ringbuf.New(capacity)
	if err != nil {
		return err
	}

	for i := 1; i <= capacity; i++ {
		if err := rb.Push(byte(i * 10)); err != nil {
			return errors.Wrap(err, "demo push")
		}
	}

	if err := rb.Push(byte((capacity + 1) * 10)); err != nil {
		fmt.Fprintf(w, "push failed: %v\n", err)
	}

	for {
		v, ok := rb.Pop()
		if !ok {
			break
		}
		fmt.Fprintf(w, "read: %d\n", v)
	}
	return nil
}
