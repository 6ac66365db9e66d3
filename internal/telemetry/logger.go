package telemetry

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTELHook adds trace and span IDs to every log entry written with a
// span-carrying context.
type OTELHook struct{}

func (h OTELHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return
	}

	e.Str("trace_id", span.SpanContext().TraceID().String())
	e.Str("span_id", span.SpanContext().SpanID().String())

	if level == zerolog.ErrorLevel {
		span.SetStatus(codes.Error, msg)
	}
}

// Logger wraps zerolog with OTEL integration.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a logger writing to w. Format is "console" for human
// output or "json"; level is a zerolog level name.
func NewLogger(service, level, format string, w io.Writer) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	switch format {
	case "json":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Hook(OTELHook{})

	return &Logger{Logger: logger}, nil
}

// WithContext returns a logger bound to ctx so entries carry its trace.
func (l *Logger) WithContext(ctx context.Context) *zerolog.Logger {
	logger := l.Logger.With().Ctx(ctx).Logger()
	return &logger
}

// LogCheckStart logs the start of a permission check.
func (l *Logger) LogCheckStart(ctx context.Context, probe string, attrs ...attribute.KeyValue) {
	event := l.WithContext(ctx).Debug().Str("probe", probe)
	for _, attr := range attrs {
		event = addAttributeToEvent(event, attr)
	}
	event.Msg("permission check started")
}

// LogCheckEnd logs the outcome of a permission check.
func (l *Logger) LogCheckEnd(ctx context.Context, probe, permission string, err error) {
	logger := l.WithContext(ctx)

	if err != nil {
		logger.Error().
			Err(err).
			Str("probe", probe).
			Msg("permission check failed")
		return
	}
	logger.Info().
		Str("probe", probe).
		Str("permission", permission).
		Msg("permission check completed")
}

func addAttributeToEvent(event *zerolog.Event, attr attribute.KeyValue) *zerolog.Event {
	key := string(attr.Key)

	switch attr.Value.Type() {
	case attribute.STRING:
		return event.Str(key, attr.Value.AsString())
	case attribute.INT64:
		return event.Int64(key, attr.Value.AsInt64())
	case attribute.FLOAT64:
		return event.Float64(key, attr.Value.AsFloat64())
	case attribute.BOOL:
		return event.Bool(key, attr.Value.AsBool())
	default:
		return event.Str(key, attr.Value.Emit())
	}
}
