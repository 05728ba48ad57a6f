// Package observe holds the OpenTelemetry metric instruments recorded by the
// codec service. Instruments come from otel.GetMeterProvider() unless a
// provider is supplied, so nothing is exported until the host installs one.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
)

const meterName = "github.com/Raikerian/go-turkish-dtmf"

// Module provides *Metrics from the global meter provider.
var Module = fx.Module("observe",
	fx.Provide(func() (*Metrics, error) {
		return NewMetrics(otel.GetMeterProvider())
	}),
)

// Frame states recorded on DecodeFrames.
const (
	FrameActive  = "active"
	FrameSilence = "silence"
)

// Metrics holds the codec instruments. Safe for concurrent use.
type Metrics struct {
	// EncodedSymbols counts symbols turned into tone frames.
	EncodedSymbols metric.Int64Counter

	// SkippedCharacters counts input characters outside the alphabet.
	SkippedCharacters metric.Int64Counter

	// DecodeFrames counts analysed frames. Use with attribute:
	//   attribute.String("state", FrameActive|FrameSilence)
	DecodeFrames metric.Int64Counter

	// DecodeRejected counts decode calls refused as invalid input.
	DecodeRejected metric.Int64Counter

	// DecodeDuration tracks decode latency.
	DecodeDuration metric.Float64Histogram
}

var latencyBuckets = []float64{
	0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
}

// NewMetrics creates the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.EncodedSymbols, err = m.Int64Counter("dtmf.encode.symbols",
		metric.WithDescription("Symbols encoded into tone frames."),
	); err != nil {
		return nil, err
	}
	if met.SkippedCharacters, err = m.Int64Counter("dtmf.encode.skipped",
		metric.WithDescription("Input characters skipped as outside the alphabet."),
	); err != nil {
		return nil, err
	}
	if met.DecodeFrames, err = m.Int64Counter("dtmf.decode.frames",
		metric.WithDescription("Frames analysed by the decoder, by state."),
	); err != nil {
		return nil, err
	}
	if met.DecodeRejected, err = m.Int64Counter("dtmf.decode.rejected",
		metric.WithDescription("Decode calls rejected as invalid audio input."),
	); err != nil {
		return nil, err
	}
	if met.DecodeDuration, err = m.Float64Histogram("dtmf.decode.duration",
		metric.WithDescription("Latency of one decode call."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordFrames adds active and silent frame counts.
func (m *Metrics) RecordFrames(ctx context.Context, active, silence int) {
	if active > 0 {
		m.DecodeFrames.Add(ctx, int64(active), metric.WithAttributes(attribute.String("state", FrameActive)))
	}
	if silence > 0 {
		m.DecodeFrames.Add(ctx, int64(silence), metric.WithAttributes(attribute.String("state", FrameSilence)))
	}
}

// RecordDecodeDuration records the time since start.
func (m *Metrics) RecordDecodeDuration(ctx context.Context, start time.Time) {
	m.DecodeDuration.Record(ctx, time.Since(start).Seconds())
}
