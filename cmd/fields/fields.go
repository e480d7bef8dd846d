// Package fields lists the attendance form field universe
package fields

import (
	"fmt"

	"connect/tally/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the fields command
var Cmd = &cobra.Command{
	Use:   "fields",
	Short: "List the attendance form fields",
	Long:  `Fields prints every form field identifier keywords can be taught for.`,
	Run:   fieldsFunc,
}

func fieldsFunc(cmd *cobra.Command, args []string) {
	for _, f := range models.Fields() {
		fmt.Printf("  %-22s %-8s %s\n", f.ID, f.Category, f.Description)
	}
}
