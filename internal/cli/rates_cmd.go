package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/courseload/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRatesCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the reading and writing rate tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reading, writing := a.Rates.ReadingRates(), a.Rates.WritingRates()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"reading": reading, "writing": writing})
			}
			fmt.Fprint(out, formatter.FormatRateTables(reading, writing))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tables as JSON")
	return cmd
}
