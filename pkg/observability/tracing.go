package observability

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer provides X-Ray tracing. A disabled tracer runs functions untraced.
type Tracer struct {
	serviceName string
	enabled     bool
}

// NewTracer creates a new tracer instance
func NewTracer(serviceName string, enabled bool) *Tracer {
	return &Tracer{
		serviceName: serviceName,
		enabled:     enabled,
	}
}

// Enabled reports whether tracing is on
func (t *Tracer) Enabled() bool {
	return t != nil && t.enabled
}

// InstrumentAWS adds X-Ray subsegments to every AWS SDK call made with cfg
func (t *Tracer) InstrumentAWS(cfg *aws.Config) {
	if !t.Enabled() {
		return
	}
	awsv2.AWSV2Instrumentor(&cfg.APIOptions)
}

// InstrumentHTTPClient wraps client so outbound requests are traced
func (t *Tracer) InstrumentHTTPClient(client *http.Client) *http.Client {
	if !t.Enabled() {
		return client
	}
	return xray.Client(client)
}

// TraceFunction wraps a function with a subsegment
func (t *Tracer) TraceFunction(ctx context.Context, name string, fn func(context.Context) error) error {
	if !t.Enabled() {
		return fn(ctx)
	}
	return xray.Capture(ctx, t.serviceName+"."+name, fn)
}

// AddAnnotation adds an indexed annotation to the current segment
func (t *Tracer) AddAnnotation(ctx context.Context, key string, value string) {
	if !t.Enabled() {
		return
	}
	if seg := xray.GetSegment(ctx); seg != nil {
		_ = seg.AddAnnotation(key, value)
	}
}
