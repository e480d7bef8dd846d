// Package parse handles the chat transcript parsing command
package parse

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"connect/tally/cmd/root"
	"connect/tally/internal/export"
	"connect/tally/internal/models"
	"connect/tally/internal/parser"
	"connect/tally/internal/suggest"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a pasted attendance report and tally the counts",
	Long: `Parse reads a chat transcript from a file, --input or stdin, resolves
each line to a form field and prints the per-line log and accumulated
totals. With --output the totals are also written as CSV.`,
	Args: cobra.MaximumNArgs(1),
	Run:  parseFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&root.Suggest, "suggest", "s", false, "Ask the AI for field suggestions on unrecognized lines")
	Cmd.Flags().BoolVar(&root.IncludeZeroRows, "include-zero-rows", false, "Keep zero-count fields in the CSV output")
}

func parseFunc(cmd *cobra.Command, args []string) {
	text, err := readInput(args)
	if err != nil {
		root.Log.Fatalf("Failed to read input: %v", err)
	}

	opts := parser.Options{ServiceFallbackMaxLen: root.Cfg.Parser.ServiceFallbackMaxLen}
	p := parser.New(root.Mappings, opts, root.Logger)
	result := p.Parse(text)

	printOutcomes(result)
	printTotals(result)

	if root.Suggest {
		suggestIgnored(result)
	}

	if root.SharedFlags.Output != "" {
		exportOpts := export.Options{
			IncludeZeroRows: root.IncludeZeroRows || root.Cfg.Export.IncludeZeroRows,
		}
		if err := export.WriteTotalsFile(&result, root.SharedFlags.Output, exportOpts); err != nil {
			root.Log.Fatalf("Failed to write totals CSV: %v", err)
		}
	}
}

func readInput(args []string) (string, error) {
	file := root.SharedFlags.Input
	if len(args) == 1 {
		file = args[0]
	}
	if file == "" || file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("error reading input file: %w", err)
	}
	return string(data), nil
}

func printOutcomes(result models.ParseResult) {
	for _, outcome := range result.Log {
		if outcome.Status == models.StatusSuccess {
			fmt.Printf("  ok    %-20s +%-4d %s\n", outcome.Field, outcome.Quantity, outcome.Line)
			continue
		}
		fmt.Printf("  skip  %-25s %s\n", outcome.Message, outcome.Line)
	}
}

func printTotals(result models.ParseResult) {
	fmt.Println()
	for _, f := range models.Fields() {
		count, ok := result.Totals[f.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s %-22s %d\n", f.Category, f.Description, count)
	}
	fmt.Printf("  %-8s %-22s %d\n", "Total", "", result.Total())
}

// suggestIgnored asks the configured AI for an advisory field suggestion on
// every ignored line. Suggestions are printed, never applied.
func suggestIgnored(result models.ParseResult) {
	if !root.Cfg.AI.Enabled {
		root.Log.Warn("AI suggestions requested but ai.enabled is false")
		return
	}

	suggester := suggest.NewGeminiSuggester(root.Cfg.AI.APIKey, root.Cfg.AI.Model, root.Logger)
	defer func() {
		if err := suggester.Close(); err != nil {
			root.Log.Warnf("Failed to close Gemini client: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(root.Cfg.AI.TimeoutSeconds)*time.Second)
	defer cancel()

	for _, outcome := range result.Log {
		if outcome.Status != models.StatusIgnored {
			continue
		}
		suggestion, err := suggester.Suggest(ctx, outcome.Line)
		if err != nil {
			root.Log.Warnf("No suggestion for %q: %v", outcome.Line, err)
			continue
		}
		fmt.Printf("  hint  %q looks like %s (%s)\n", outcome.Line, suggestion.Field, suggestion.Reason)
		fmt.Printf("        teach it: tally teach --keyword <word> --field %s\n", suggestion.Field)
	}
}
