// Package teach handles the keyword teaching command
package teach

import (
	"fmt"

	"connect/tally/cmd/root"
	"connect/tally/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the teach command
var Cmd = &cobra.Command{
	Use:   "teach",
	Short: "Teach the parser a new keyword mapping",
	Long: `Teach persists a keyword-to-field mapping so previously unrecognized
lines resolve on the next parse. Keywords sharing a field with an existing
mapping are merged into it.`,
	Run: teachFunc,
}

func init() {
	Cmd.Flags().StringSliceVarP(&root.Keywords, "keyword", "k", nil, "Keyword to map (repeatable)")
	Cmd.Flags().StringVarP(&root.FieldName, "field", "f", "", "Target form field identifier")
	_ = Cmd.MarkFlagRequired("keyword")
	_ = Cmd.MarkFlagRequired("field")
}

func teachFunc(cmd *cobra.Command, args []string) {
	field := models.FieldID(root.FieldName)
	if !models.ValidField(field) {
		root.Log.Fatalf("Unknown field %q, run 'tally fields' to list valid identifiers", root.FieldName)
	}

	rule := models.KeywordRule{
		Keywords: root.Keywords,
		Field:    field,
	}

	if err := root.Mappings.SaveMapping(rule); err != nil {
		root.Log.Fatalf("Failed to save mapping: %v", err)
	}

	fmt.Printf("Learned %v -> %s\n", root.Keywords, field)
	root.Log.WithField("field", string(field)).Info("Keyword mapping saved")
}
