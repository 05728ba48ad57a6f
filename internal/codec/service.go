package codec

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Raikerian/go-turkish-dtmf/internal/config"
	"github.com/Raikerian/go-turkish-dtmf/internal/observe"
	"github.com/Raikerian/go-turkish-dtmf/pkg/dtmf"
)

const defaultWorkers = 4

// Service wraps the tone engine with logging, metrics and frame caching.
// It is safe for concurrent use.
type Service struct {
	logger   *zap.Logger
	metrics  *observe.Metrics
	tones    *ToneCache
	decoder  *dtmf.Decoder
	encoding dtmf.EncodeOptions
	turkish  bool
	workers  int
}

// ServiceParams holds dependencies for NewService.
type ServiceParams struct {
	fx.In

	Cfg     *config.Config
	Logger  *zap.Logger
	Metrics *observe.Metrics
	Tones   *ToneCache
}

// NewService creates a Service from config.
func NewService(params ServiceParams) *Service {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("codec")

	threshold := params.Cfg.Engine.PowerThreshold
	if threshold <= 0 {
		logger.Warn("Engine PowerThreshold is not configured or is invalid, using the default",
			zap.Float64("configuredThreshold", threshold),
			zap.Float64("default", dtmf.DefaultPowerThreshold))
		threshold = dtmf.DefaultPowerThreshold
	}

	workers := params.Cfg.Decode.Workers
	if workers <= 0 {
		logger.Warn("Decode Workers is not configured or is invalid, defaulting to 4",
			zap.Int("configuredWorkers", workers))
		workers = defaultWorkers
	}

	return &Service{
		logger:   logger,
		metrics:  params.Metrics,
		tones:    params.Tones,
		decoder:  dtmf.NewDecoder(dtmf.WithPowerThreshold(threshold)),
		encoding: dtmf.EncodeOptions{SeparateRepeats: params.Cfg.Engine.SeparateRepeats},
		turkish:  params.Cfg.Engine.TurkishCasing,
		workers:  workers,
	}
}

// EncodeOptions returns the configured encode options.
func (s *Service) EncodeOptions() dtmf.EncodeOptions {
	return s.encoding
}

// Encode encodes text with the configured options.
func (s *Service) Encode(ctx context.Context, text string) (dtmf.Signal, error) {
	return s.EncodeWith(ctx, text, s.encoding)
}

// EncodeWith encodes text into a quantized tone signal. The output matches
// dtmf.EncodeWith for the same folded text.
func (s *Service) EncodeWith(ctx context.Context, text string, opts dtmf.EncodeOptions) (dtmf.Signal, error) {
	if err := ctx.Err(); err != nil {
		return dtmf.Signal{}, err
	}

	var (
		out     []int16
		prev    dtmf.Symbol
		encoded int
		skipped int
		hits    int
	)
	for _, r := range s.fold(text) {
		frame, hit, err := s.tones.Frame(r)
		if errors.Is(err, dtmf.ErrUnknownSymbol) {
			skipped++
			s.logger.Debug("Skipping character outside the alphabet", zap.String("char", string(r)))
			continue
		}
		if err != nil {
			return dtmf.Signal{}, fmt.Errorf("encode %q: %w", r, err)
		}

		if opts.SeparateRepeats && encoded > 0 && r == prev {
			out = append(out, make([]int16, dtmf.FrameLength)...)
		}
		out = append(out, frame...)
		prev = r
		encoded++
		if hit {
			hits++
		}
	}

	if s.metrics != nil {
		s.metrics.EncodedSymbols.Add(ctx, int64(encoded))
		s.metrics.SkippedCharacters.Add(ctx, int64(skipped))
	}
	s.logger.Info("Encoded text",
		zap.Int("symbols", encoded),
		zap.Int("skipped", skipped),
		zap.Int("cacheHits", hits),
		zap.Int("samples", len(out)),
	)

	if out == nil {
		out = []int16{}
	}
	return dtmf.Signal{SampleRate: dtmf.SampleRate, Samples: out}, nil
}

// Decode decodes one input buffer into text.
func (s *Service) Decode(ctx context.Context, in dtmf.Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	start := time.Now()

	dets, err := s.decoder.DecodeFrames(in)
	if err != nil {
		if s.metrics != nil {
			s.metrics.DecodeRejected.Add(ctx, 1)
		}
		s.logger.Warn("Rejected decode input", zap.Error(err))
		return "", fmt.Errorf("decode: %w", err)
	}

	var (
		b       strings.Builder
		active  int
		emitted int
	)
	for _, det := range dets {
		if det.Active {
			active++
		}
		if det.Emitted {
			b.WriteRune(det.Symbol)
			emitted++
		}
	}

	if s.metrics != nil {
		s.metrics.RecordFrames(ctx, active, len(dets)-active)
		s.metrics.RecordDecodeDuration(ctx, start)
	}
	s.logger.Info("Decoded audio",
		zap.Int("frames", len(dets)),
		zap.Int("activeFrames", active),
		zap.Int("symbols", emitted),
		zap.Duration("elapsed", time.Since(start)),
	)

	return b.String(), nil
}

// DecodeBatch decodes inputs concurrently, at most the configured number of
// workers at a time. Results keep the order of inputs. The first failure
// cancels the remaining work and is returned.
func (s *Service) DecodeBatch(ctx context.Context, inputs []dtmf.Input) ([]string, error) {
	results := make([]string, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, in := range inputs {
		g.Go(func() error {
			text, err := s.Decode(gctx, in)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fold upper-cases text. Turkish rules map i to İ and ı to I; the default
// rules map both to I.
func (s *Service) fold(text string) string {
	if s.turkish {
		return cases.Upper(language.Turkish).String(text)
	}
	return strings.ToUpper(text)
}
