// Package client executes EC2 model operations through aws-sdk-go-v2.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/yairfalse/ec2model/pkg/request"
)

const instrumentationName = "github.com/yairfalse/ec2model/ec2/client"

// Call outcomes recorded on spans, metrics and log events.
const (
	outcomeOK     = "ok"
	outcomeDryRun = "dry_run"
	outcomeError  = "error"
)

// Config holds EC2 client configuration.
type Config struct {
	Region   string
	Profile  string
	Endpoint string
}

// Client executes model operations against EC2.
type Client struct {
	api    EC2API
	logger zerolog.Logger
	tracer trace.Tracer

	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// Option configures a Client.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

// WithLogger sets the logger used for call events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracer sets the tracer used for call spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithMeter sets the meter that owns the call instruments.
func WithMeter(m metric.Meter) Option {
	return func(o *options) { o.meter = m }
}

// New creates a client backed by the default AWS credential chain.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	api := awsec2.NewFromConfig(awsCfg, func(o *awsec2.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithAPI(api, opts...)
}

// NewWithAPI creates a client around an existing EC2 API implementation.
func NewWithAPI(api EC2API, opts ...Option) (*Client, error) {
	o := options{
		logger: log.Logger,
		tracer: otel.Tracer(instrumentationName),
		meter:  otel.Meter(instrumentationName),
	}
	for _, opt := range opts {
		opt(&o)
	}

	calls, err := o.meter.Int64Counter(
		"ec2model_calls_total",
		metric.WithDescription("EC2 calls by operation and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("create calls counter: %w", err)
	}

	duration, err := o.meter.Float64Histogram(
		"ec2model_call_duration_seconds",
		metric.WithDescription("EC2 call duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &Client{
		api:      api,
		logger:   o.logger.With().Str("component", "ec2-client").Logger(),
		tracer:   o.tracer,
		calls:    calls,
		duration: duration,
	}, nil
}

// invoke runs one SDK call with the request's metadata applied and records
// a span, metrics and a log event for it. A nil output with no error is
// replaced by an empty one.
func invoke[P, O any](
	ctx context.Context,
	c *Client,
	r request.Request,
	params P,
	call func(context.Context, P, ...func(*awsec2.Options)) (*O, error),
) (*O, error) {
	md := r.RequestMetadata()
	if d := md.Timeout(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	op := r.OperationName()
	ctx, span := c.tracer.Start(ctx, "EC2."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.system", "aws-api"),
			attribute.String("rpc.service", "EC2"),
			attribute.String("rpc.method", op),
		),
	)
	defer span.End()

	start := time.Now()
	out, err := call(ctx, params, requestOptions(md)...)
	c.record(ctx, span, op, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = new(O)
	}
	return out, nil
}

func (c *Client) record(ctx context.Context, span trace.Span, op string, elapsed time.Duration, err error) {
	outcome := outcomeOf(err)
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	)
	c.calls.Add(ctx, 1, attrs)
	c.duration.Record(ctx, elapsed.Seconds(), attrs)
	span.SetAttributes(attribute.String("ec2.outcome", outcome))

	logger := c.logger.With().
		Ctx(ctx).
		Str("operation", op).
		Dur("duration", elapsed).
		Logger()

	if outcome == outcomeError {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn().Err(err).Msg("ec2 call failed")
		return
	}
	logger.Debug().Str("outcome", outcome).Msg("ec2 call completed")
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeOK
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == codeDryRunOperation {
		return outcomeDryRun
	}
	return outcomeError
}

// requestOptions turns per-request metadata into SDK option functions.
func requestOptions(md *request.Metadata) []func(*awsec2.Options) {
	var fns []func(*awsec2.Options)

	if p := md.CredentialsProvider(); p != nil {
		fns = append(fns, func(o *awsec2.Options) {
			o.Credentials = p
		})
	}

	headers := md.CustomRequestHeaders()
	if len(headers) > 0 {
		names := make([]string, 0, len(headers))
		for name := range headers {
			names = append(names, name)
		}
		sort.Strings(names)
		fns = append(fns, func(o *awsec2.Options) {
			for _, name := range names {
				o.APIOptions = append(o.APIOptions, smithyhttp.SetHeaderValue(name, headers[name]))
			}
		})
	}

	if params := md.CustomQueryParameters(); len(params) > 0 {
		fns = append(fns, func(o *awsec2.Options) {
			o.APIOptions = append(o.APIOptions, func(stack *middleware.Stack) error {
				return stack.Build.Add(&customQueryParameters{params: params}, middleware.After)
			})
		})
	}

	return fns
}

// customQueryParameters appends caller supplied parameters to the request
// URL during the build step.
type customQueryParameters struct {
	params url.Values
}

func (*customQueryParameters) ID() string { return "ec2model:CustomQueryParameters" }

func (m *customQueryParameters) HandleBuild(ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler) (
	middleware.BuildOutput, middleware.Metadata, error,
) {
	req, ok := in.Request.(*smithyhttp.Request)
	if !ok {
		return middleware.BuildOutput{}, middleware.Metadata{}, fmt.Errorf("unexpected request type %T", in.Request)
	}

	query := req.URL.Query()
	for name, values := range m.params {
		for _, v := range values {
			query.Add(name, v)
		}
	}
	req.URL.RawQuery = query.Encode()

	return next.HandleBuild(ctx, in)
}
