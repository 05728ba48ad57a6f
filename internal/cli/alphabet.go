package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Raikerian/go-turkish-dtmf/pkg/dtmf"
)

func newAlphabetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "Print the symbol grid and its tones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := dtmf.Alphabet()
			high := dtmf.HighFrequencies()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			header := make([]string, 0, len(high)+1)
			header = append(header, "Hz")
			for _, f := range high {
				header = append(header, fmt.Sprintf("%g", f))
			}
			fmt.Fprintln(w, strings.Join(header, "\t"))

			for row, low := range dtmf.LowFrequencies() {
				cells := make([]string, 0, len(high)+1)
				cells = append(cells, fmt.Sprintf("%g", low))
				for col := range high {
					cells = append(cells, displaySymbol(m.SymbolFor(row, col)))
				}
				fmt.Fprintln(w, strings.Join(cells, "\t"))
			}

			return w.Flush()
		},
	}
}

func displaySymbol(s dtmf.Symbol) string {
	if s == dtmf.Space {
		return "␠"
	}
	return string(s)
}
