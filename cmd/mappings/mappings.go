// Package mappings handles inspection of the keyword mapping table
package mappings

import (
	"fmt"
	"strings"

	"connect/tally/cmd/root"
	"connect/tally/internal/models"
	"connect/tally/internal/rules"

	"github.com/spf13/cobra"
)

// Cmd represents the mappings command
var Cmd = &cobra.Command{
	Use:   "mappings",
	Short: "List or clear the keyword mapping table",
	Long: `Mappings prints the effective keyword table the parser matches
against: taught mappings first, then the built-in defaults they do not
override. --custom-only restricts the listing to taught mappings and
--clear deletes all of them.`,
	Run: mappingsFunc,
}

func init() {
	Cmd.Flags().BoolVar(&root.CustomOnly, "custom-only", false, "Only list taught mappings")
	Cmd.Flags().BoolVar(&root.ClearAll, "clear", false, "Delete all taught mappings")
}

func mappingsFunc(cmd *cobra.Command, args []string) {
	if root.ClearAll {
		if err := root.Mappings.Clear(); err != nil {
			root.Log.Fatalf("Failed to clear mappings: %v", err)
		}
		fmt.Println("Cleared all taught mappings")
		return
	}

	custom := root.Mappings.LoadMappings()
	if root.CustomOnly {
		if len(custom) == 0 {
			fmt.Println("No taught mappings yet, use 'tally teach' to add one")
			return
		}
		printRules(custom, customSet(custom))
		return
	}

	printRules(rules.Effective(custom), customSet(custom))
}

func customSet(custom []models.KeywordRule) map[string]bool {
	set := make(map[string]bool, len(custom))
	for _, rule := range custom {
		for _, kw := range rule.Keywords {
			set[string(rule.Field)+"|"+kw] = true
		}
	}
	return set
}

func printRules(table []models.KeywordRule, custom map[string]bool) {
	for _, rule := range table {
		source := "default"
		for _, kw := range rule.Keywords {
			if custom[string(rule.Field)+"|"+kw] {
				source = "custom"
				break
			}
		}
		fmt.Printf("  %-22s %-8s %s\n", rule.Field, source, strings.Join(rule.Keywords, ", "))
	}
}
