// Package logger provides logging functionality for tagaudit.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted informational message.
	Logf(format string, args ...interface{})
	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that drops everything.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger writing messages to out and errors
// to errOut.
type defaultLogger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewDefaultLogger creates a new logger writing to stdout and stderr.
func NewDefaultLogger() Logger {
	return &defaultLogger{out: os.Stdout, errOut: os.Stderr}
}

// NewQuietLogger creates a logger that keeps error output only; regular
// messages are dropped.
func NewQuietLogger() Logger {
	return &defaultLogger{out: io.Discard, errOut: os.Stderr}
}

// NewWriterLogger creates a logger writing both streams to the given
// writers, used in tests.
func NewWriterLogger(out, errOut io.Writer) Logger {
	return &defaultLogger{out: out, errOut: errOut}
}

// Logf writes a formatted message to the output stream with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format+"\n", args...)
}

// Errorf writes a formatted message to the error stream with thread safety.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.errOut, "Error: "+format+"\n", args...)
}
