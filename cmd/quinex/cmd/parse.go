package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quinex/quinex"
	"github.com/quinex/quinex/config"
	"github.com/quinex/quinex/report"
)

var (
	parseVerbose   bool
	parseFormat    string
	parseSimplify  bool
	parseStrict    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Parse a quantity expression and print the result",
	Long: `Parse free text into a structured quantity and print the result.

Examples:
  quinex parse "100 mm x 100 mm x 400 mm"
  quinex parse -v "12.5 ± 3.7%"
  echo "$0.07/kWh to $0.16/kWh" | quinex parse`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args)
	},
}

func init() {
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Show raw text slots alongside normalized values")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Output format: text, json, markdown, yaml, html")
	parseCmd.Flags().BoolVar(&parseSimplify, "simplify", false, "Collapse uncertainty slots into one field")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Fail with a non-zero exit code on an unsuccessful parse")
	rootCmd.AddCommand(parseCmd)
}

func runParse(args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	cfg := config.Get()
	opts := quinex.ParseOptions{
		Simplify:         parseSimplify || cfg.Parser.Simplify,
		ErrorIfNoSuccess: parseStrict || cfg.Parser.ErrorIfNoSuccess,
	}

	result, err := quinex.Parse(text, opts)
	if err != nil {
		if _, ok := err.(*quinex.StrictError); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return err
	}

	format := parseFormat
	if format == "" {
		format = cfg.Formatter.DefaultFormat
	}
	formatter := report.GetFormatter(format)
	return formatter.Format(os.Stdout, result, report.Options{
		Verbose:       parseVerbose || cfg.Formatter.Verbose,
		IncludeErrors: cfg.Formatter.IncludeErrors,
	})
}

// inputText joins positional args as the text to parse, falling back to
// stdin when no arguments were given.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(bytes))
	if text == "" {
		return "", fmt.Errorf("no input provided")
	}
	return text, nil
}
