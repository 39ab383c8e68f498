// Package logging writes leveled log entries as JSON lines, or as colored lines when stdout is a
// terminal. Request scoped entries carry the trace id of the request span.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// PrettyPrint is implemented by messages that render themselves on a terminal.
type PrettyPrint interface {
	PrettyPrint(writer io.Writer)
}

// Logger writes leveled entries. ERROR and FATAL entries go to stderr, the others to stdout.
// Fatal and Fatalf exit the process once the entry is written.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}

type outputStyle int

const (
	styleJSON outputStyle = iota
	styleTerminal
	stylePlain
)

type logger struct {
	level  Level
	style  outputStyle
	out    io.Writer
	errOut io.Writer

	// one entry may take several writes on a terminal
	mu sync.Mutex
}

// NewLogger logs at level to the current stdout and stderr.
func NewLogger(level Level) Logger {
	l := &logger{level: level, out: os.Stdout, errOut: os.Stderr}

	if f, ok := l.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		l.style = styleTerminal
	}

	return l
}

// NewMockLogger logs only the message of each entry, which keeps log assertions in tests simple.
func NewMockLogger(level Level) Logger {
	return &logger{level: level, style: stylePlain, out: os.Stdout, errOut: os.Stderr}
}

func (l *logger) Debug(args ...any)                 { l.write(DEBUG, "", args) }
func (l *logger) Debugf(format string, args ...any) { l.write(DEBUG, format, args) }
func (l *logger) Info(args ...any)                  { l.write(INFO, "", args) }
func (l *logger) Infof(format string, args ...any)  { l.write(INFO, format, args) }
func (l *logger) Warn(args ...any)                  { l.write(WARN, "", args) }
func (l *logger) Warnf(format string, args ...any)  { l.write(WARN, format, args) }
func (l *logger) Error(args ...any)                 { l.write(ERROR, "", args) }
func (l *logger) Errorf(format string, args ...any) { l.write(ERROR, format, args) }

func (l *logger) Fatal(args ...any) {
	l.write(FATAL, "", args)
	os.Exit(1) //nolint:revive // a fatal entry ends the process
}

func (l *logger) Fatalf(format string, args ...any) {
	l.write(FATAL, format, args)
	os.Exit(1) //nolint:revive // a fatal entry ends the process
}

type entry struct {
	Level   Level     `json:"level"`
	Time    time.Time `json:"time"`
	Message any       `json:"message"`
	TraceID string    `json:"trace_id,omitempty"`
}

func (l *logger) write(level Level, format string, args []any) {
	if level < l.level {
		return
	}

	w := l.out
	if level >= ERROR {
		w = l.errOut
	}

	e := newEntry(level, format, args)

	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.style {
	case styleTerminal:
		e.pretty(w)
	case stylePlain:
		fmt.Fprintf(w, "%v\n", e.Message)
	default:
		_ = json.NewEncoder(w).Encode(e)
	}
}

// traceMark is added to the arguments by ContextLogger. It fills the trace_id of the entry and is
// left out of the message.
type traceMark string

func newEntry(level Level, format string, args []any) *entry {
	e := &entry{Level: level, Time: time.Now()}
	msg := make([]any, 0, len(args))

	for _, a := range args {
		if id, ok := a.(traceMark); ok {
			e.TraceID = string(id)

			continue
		}

		msg = append(msg, a)
	}

	switch {
	case format != "":
		e.Message = fmt.Sprintf(format, msg...)
	case len(msg) == 1:
		e.Message = msg[0]
	default:
		e.Message = msg
	}

	return e
}

func (e *entry) pretty(w io.Writer) {
	fmt.Fprintf(w, "\x1b[38;5;%dm%-5s\x1b[0m [%s]", e.Level.color(), e.Level, e.Time.Format(time.TimeOnly))

	if e.TraceID != "" {
		fmt.Fprintf(w, " \x1b[38;5;8m%s\x1b[0m", e.TraceID)
	}

	fmt.Fprint(w, " ")

	if p, ok := e.Message.(PrettyPrint); ok {
		p.PrettyPrint(w)

		return
	}

	fmt.Fprintf(w, "%v\n", e.Message)
}
