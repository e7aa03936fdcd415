// Package tracing times named operations.
package tracing

// Tracer starts spans.
type Tracer interface {
	StartSpan(operationName string) Span
}

// Span is a single timed operation. Finish must be called exactly once.
type Span interface {
	SetBaggageItem(key string, value any)
	// SetError marks the span as failed with err. A nil err is ignored.
	SetError(err error)
	Finish()
}
