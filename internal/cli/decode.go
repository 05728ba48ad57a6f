package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Raikerian/go-turkish-dtmf/internal/codec"
	"github.com/Raikerian/go-turkish-dtmf/pkg/audio"
	"github.com/Raikerian/go-turkish-dtmf/pkg/dtmf"
)

type decodeOptions struct {
	format   string
	channels int
	rate     int
}

func newDecodeCmd(global *globalOptions) *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode <file>...",
		Short: "Decode raw PCM files back into text",
		Long: `Decode raw, headerless little-endian PCM back into text.

Only the first channel is analysed. Several files are decoded
concurrently; each result is printed on its own line, prefixed with the
file name when more than one file is given. Use - to read stdin.

Example:
  dtmf decode merhaba.pcm
  dtmf decode --format f32le --channels 2 --rate 48000 a.raw b.raw`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := audio.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			if err := checkStdinOnce(args); err != nil {
				return err
			}

			inputs := make([]dtmf.Input, len(args))
			for i, path := range args {
				raw, err := readPCM(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}

				samples, err := format.Samples(raw)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				inputs[i] = dtmf.Input{
					SampleRate: opts.rate,
					Channels:   opts.channels,
					Samples:    samples,
				}
			}

			return global.withService(cmd.Context(), func(ctx context.Context, svc *codec.Service) error {
				texts, err := svc.DecodeBatch(ctx, inputs)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for i, text := range texts {
					if len(args) == 1 {
						fmt.Fprintln(out, text)
						continue
					}
					fmt.Fprintf(out, "%s\t%s\n", args[i], text)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(audio.FormatS16LE), "sample format: s16le, s32le or f32le")
	cmd.Flags().IntVar(&opts.channels, "channels", 1, "interleaved channel count")
	cmd.Flags().IntVar(&opts.rate, "rate", dtmf.SampleRate, "sample rate in Hz")

	return cmd
}

func readPCM(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return b, nil
}

// checkStdinOnce rejects more than one "-" argument.
func checkStdinOnce(args []string) error {
	seen := false
	for _, path := range args {
		if path != "-" {
			continue
		}
		if seen {
			return fmt.Errorf("stdin (-) may be given only once")
		}
		seen = true
	}

	return nil
}
