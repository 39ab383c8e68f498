// Package testutil holds helpers shared by the tests of this module.
package testutil

import (
	"bytes"
	"io"
	"os"
)

// StdoutOutputForFunc runs f and returns everything it wrote to os.Stdout.
func StdoutOutputForFunc(f func()) string {
	return captureOutput(&os.Stdout, f)
}

// StderrOutputForFunc runs f and returns everything it wrote to os.Stderr.
func StderrOutputForFunc(f func()) string {
	return captureOutput(&os.Stderr, f)
}

func captureOutput(target **os.File, f func()) string {
	r, w, _ := os.Pipe()

	old := *target
	*target = w

	f()

	_ = w.Close()
	*target = old

	var buf bytes.Buffer

	_, _ = io.Copy(&buf, r)

	return buf.String()
}
