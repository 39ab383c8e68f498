package logging

import (
	"fmt"
	"io"
	"time"
)

// HTTPEntry is one HTTP exchange: a request answered by the server, or a call made to an HTTP
// service, in which case Service names the callee. ResponseTime is in microseconds.
type HTTPEntry struct {
	TraceID      string    `json:"trace_id,omitempty"`
	SpanID       string    `json:"span_id,omitempty"`
	Service      string    `json:"service,omitempty"`
	StartTime    time.Time `json:"start_time"`
	ResponseTime int64     `json:"response_time"`
	Method       string    `json:"method"`
	URI          string    `json:"uri"`
	Status       int       `json:"response"`
	UserAgent    string    `json:"user_agent,omitempty"`
	IP           string    `json:"ip,omitempty"`
	Error        string    `json:"error,omitempty"`
}

func (e *HTTPEntry) PrettyPrint(w io.Writer) {
	fmt.Fprintf(w, "\x1b[38;5;8m%s \x1b[38;5;%dm%-6d\x1b[0m %8d\x1b[38;5;8mµs\x1b[0m %s %s",
		e.TraceID, statusColor(e.Status), e.Status, e.ResponseTime, e.Method, e.URI)

	if e.Error != "" {
		fmt.Fprintf(w, " \x1b[38;5;202m%s\x1b[0m", e.Error)
	}

	fmt.Fprintln(w)
}

func statusColor(status int) int {
	const (
		blue   = 34
		red    = 202
		yellow = 220
	)

	switch status / 100 {
	case 2:
		return blue
	case 4:
		return yellow
	case 5:
		return red
	}

	return 0
}
