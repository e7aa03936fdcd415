package tracing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/macropower/fivesquare/pkg/squareerrors"
)

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

var (
	_ Tracer = LoggingTracer{}
	_ Span   = loggingSpan{}
)

// LoggingTracer emits a debug record for every finished span. Failed spans
// carry the [squareerrors.Kind] of their error.
type LoggingTracer struct {
	logger *slog.Logger
}

func NewLoggingTracer(logger *slog.Logger) *LoggingTracer {
	return &LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn
func (l LoggingTracer) StartSpan(operationName string) Span {
	return loggingSpan{
		logger:        l.logger,
		id:            uuid.NewString(),
		operationName: operationName,
		baggage:       make(map[string]any),
		failure:       &spanFailure{},
		start:         time.Now(),
	}
}

type loggingSpan struct {
	start         time.Time
	logger        *slog.Logger
	baggage       map[string]any
	failure       *spanFailure
	id            string
	operationName string
}

// spanFailure is shared by copies of a loggingSpan.
type spanFailure struct {
	err error
}

func (s loggingSpan) Finish() {
	attrs := []any{}
	attrs = append(attrs, baggageToVals(s.baggage)...)
	attrs = append(attrs,
		"span_id", s.id,
		"operation_name", s.operationName,
		"time_ms", time.Since(s.start).Seconds()*1e3,
	)

	if err := s.failure.err; err != nil {
		attrs = append(attrs,
			"status", StatusFailed,
			"error_kind", squareerrors.KindOf(err).String(),
			"error", err.Error(),
		)
	} else {
		attrs = append(attrs, "status", StatusOK)
	}

	s.logger.Log(context.Background(), slog.LevelDebug, "trace", attrs...)
}

func (s loggingSpan) SetError(err error) {
	if err == nil {
		return
	}

	s.failure.err = err
}

func (s loggingSpan) SetBaggageItem(key string, value any) {
	s.baggage[key] = value
}

func baggageToVals(baggage map[string]any) []any {
	result := make([]any, 0, len(baggage)*2)
	for k, v := range baggage {
		result = append(result, k, v)
	}

	return result
}
