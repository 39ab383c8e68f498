package logging

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// ContextLogger logs through a base Logger and stamps every entry with the trace id of the span
// found in the request context. Without a valid span entries carry no trace id.
type ContextLogger struct {
	base    Logger
	traceID string
}

func NewContextLogger(ctx context.Context, base Logger) *ContextLogger {
	l := &ContextLogger{base: base}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		l.traceID = sc.TraceID().String()
	}

	return l
}

func (l *ContextLogger) stamp(args []any) []any {
	if l.traceID == "" {
		return args
	}

	return append(args[:len(args):len(args)], traceMark(l.traceID))
}

func (l *ContextLogger) Debug(args ...any)            { l.base.Debug(l.stamp(args)...) }
func (l *ContextLogger) Debugf(f string, args ...any) { l.base.Debugf(f, l.stamp(args)...) }
func (l *ContextLogger) Info(args ...any)             { l.base.Info(l.stamp(args)...) }
func (l *ContextLogger) Infof(f string, args ...any)  { l.base.Infof(f, l.stamp(args)...) }
func (l *ContextLogger) Warn(args ...any)             { l.base.Warn(l.stamp(args)...) }
func (l *ContextLogger) Warnf(f string, args ...any)  { l.base.Warnf(f, l.stamp(args)...) }
func (l *ContextLogger) Error(args ...any)            { l.base.Error(l.stamp(args)...) }
func (l *ContextLogger) Errorf(f string, args ...any) { l.base.Errorf(f, l.stamp(args)...) }
func (l *ContextLogger) Fatal(args ...any)            { l.base.Fatal(l.stamp(args)...) }
func (l *ContextLogger) Fatalf(f string, args ...any) { l.base.Fatalf(f, l.stamp(args)...) }
