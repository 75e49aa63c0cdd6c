package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quinex/quinex"
	"github.com/quinex/quinex/config"
)

var unitGroupExponent int

var unitCmd = &cobra.Command{
	Use:   "unit <expression>",
	Short: "Link a unit expression to the unit ontology",
	Long: `Link a surface unit expression - simple or compound - to its
dimensional URI(s). A bare number such as a year does not link on its own.

Examples:
  quinex unit kWh
  quinex unit "kg*m/s^2"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnit(args[0])
	},
}

func init() {
	unitCmd.Flags().IntVarP(&unitGroupExponent, "group-exponent", "g", 0, "Grouping exponent (0 uses the parser default)")
	rootCmd.AddCommand(unitCmd)
}

func runUnit(expr string) error {
	groupExponent := unitGroupExponent
	if groupExponent == 0 {
		groupExponent = config.Get().Parser.DefaultGroupExponent
	}

	comps, ok := quinex.ParseUnit(expr, groupExponent)
	if !ok {
		return fmt.Errorf("could not link unit expression %q", expr)
	}

	out := struct {
		Components   []quinex.UnitComponent `json:"components"`
		CollapsedURI string                  `json:"collapsed_uri,omitempty"`
	}{Components: comps}
	if uri, ok := quinex.AggregateUnit(comps, expr); ok {
		out.CollapsedURI = uri
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func parseYear(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q: %w", s, err)
	}
	return &y, nil
}
