package repl

// note: based off of csci1270-fall23
import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

var logger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)

type REPL struct {
	Commands map[string]func(string, *REPLConfig) error
	Help     map[string]string
}

type REPLConfig struct {
	Writer io.Writer
}

// Config controls the terminal side of Run.
type Config struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

func NewRepl() *REPL {
	r := &REPL{make(map[string]func(string, *REPLConfig) error), make(map[string]string)}
	return r
}

// Add a command, along with its help string, to the set of commands
func (r *REPL) AddCommand(trigger string, handler func(string, *REPLConfig) error, help string) {
	if trigger == "" || trigger[0] == '.' {
		return
	}
	r.Help[trigger] = help
	r.Commands[trigger] = handler
}

func (r *REPL) triggers() []string {
	keys := make([]string, 0, len(r.Commands))
	for k := range r.Commands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Return all REPL usage information as a string
func (r *REPL) HelpString() string {
	var sb strings.Builder
	sb.WriteString("Commands\n")
	for _, k := range r.triggers() {
		sb.WriteString(fmt.Sprintf("\t%s: %s\n", k, r.Help[k]))
	}
	return sb.String()
}

// Exec dispatches a single input line and writes any output or error to w.
func (r *REPL) Exec(input string, w io.Writer) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	command := strings.Fields(input)[0]
	handler, ok := r.Commands[command]
	if !ok {
		io.WriteString(w, fmt.Sprintf("Invalid command: %s\n", command))
		io.WriteString(w, r.HelpString())
		return
	}
	if err := handler(input, &REPLConfig{Writer: w}); err != nil {
		io.WriteString(w, fmt.Sprintf("Error: %v\n", err))
	}
}

func (r *REPL) completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(r.Commands))
	for _, k := range r.triggers() {
		items = append(items, readline.PcItem(k))
	}
	return readline.NewPrefixCompleter(items...)
}

// Run reads commands until EOF or "exit".
func (r *REPL) Run(cfg Config) error {
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    r.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
	if err != nil {
		return errors.Wrap(err, "cannot start readline")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		// ^C discards whatever was typed on the line
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			logger.Printf("readline failed: %v\n", err)
			return err
		}
		if strings.TrimSpace(line) == "exit" {
			return nil
		}
		r.Exec(line, rl.Stdout())
	}
}
