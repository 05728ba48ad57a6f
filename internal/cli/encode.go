package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Raikerian/go-turkish-dtmf/internal/codec"
	"github.com/Raikerian/go-turkish-dtmf/pkg/audio"
	"github.com/Raikerian/go-turkish-dtmf/pkg/dtmf"
)

type encodeOptions struct {
	output          string
	channels        int
	separateRepeats bool
}

func newEncodeCmd(global *globalOptions) *cobra.Command {
	opts := &encodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text into raw s16le PCM",
		Long: `Encode text into signed 16-bit little-endian PCM at 44100 Hz.

Arguments are joined with single spaces. Without arguments the text is
read from stdin. Characters outside the alphabet are skipped.

Example:
  dtmf encode "Günaydın" -o gunaydin.pcm
  echo "SAAT" | dtmf encode --separate-repeats -o - | aplay -f S16_LE -r 44100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return fmt.Errorf("output file is required, use -o flag")
			}
			if opts.channels <= 0 {
				return fmt.Errorf("--channels must be positive, got %d", opts.channels)
			}

			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			return global.withService(cmd.Context(), func(ctx context.Context, svc *codec.Service) error {
				encodeOpts := svc.EncodeOptions()
				if cmd.Flags().Changed("separate-repeats") {
					encodeOpts.SeparateRepeats = opts.separateRepeats
				}

				sig, err := svc.EncodeWith(ctx, text, encodeOpts)
				if err != nil {
					return err
				}

				return writeSignal(cmd, opts, sig)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().IntVar(&opts.channels, "channels", 1, "duplicate the signal across this many interleaved channels")
	cmd.Flags().BoolVar(&opts.separateRepeats, "separate-repeats", false, "insert a silent frame between repeated symbols")

	return cmd
}

func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return strings.TrimRight(string(b), "\r\n"), nil
}

func writeSignal(cmd *cobra.Command, opts *encodeOptions, sig dtmf.Signal) error {
	data := audio.PCMInt16ToLE(audio.Interleave(sig.Samples, opts.channels))

	if opts.output == "-" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
	} else if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d samples (%s, %d ch, %d Hz) to %s\n",
		len(sig.Samples), sig.Duration(), opts.channels, sig.SampleRate, opts.output)

	return nil
}
