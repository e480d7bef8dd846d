package suggest

import (
	"context"

	"connect/tally/internal/models"
)

// Suggestion is an advisory field assignment for a line the parser could not
// resolve. It is never applied automatically; the caller decides whether to
// turn it into a taught mapping.
type Suggestion struct {
	Field  models.FieldID
	Reason string
}

// Suggester proposes a field for an unrecognized attendance line.
// This abstraction keeps the CLI testable without external API calls and
// leaves room for other AI providers.
type Suggester interface {
	Suggest(ctx context.Context, line string) (Suggestion, error)
}
