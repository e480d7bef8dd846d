package suggest

import (
	"context"
	"errors"
	"testing"

	"connect/tally/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSuggestionStructuredResponse(t *testing.T) {
	suggestion, err := extractSuggestion("Field: teensAdolescentes\nReason: mentions youth group")

	require.NoError(t, err)
	assert.Equal(t, models.FieldTeensAdolescentes, suggestion.Field)
	assert.Equal(t, "mentions youth group", suggestion.Reason)
}

func TestExtractSuggestionUnstructuredResponse(t *testing.T) {
	suggestion, err := extractSuggestion("I would file this under kidsTias given the helpers mentioned.")

	require.NoError(t, err)
	assert.Equal(t, models.FieldKidsTias, suggestion.Field)
}

func TestExtractSuggestionRejectsUnknownField(t *testing.T) {
	_, err := extractSuggestion("Field: somethingElse\nReason: guess")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "somethingElse")
}

func TestExtractSuggestionRejectsEmptyResponse(t *testing.T) {
	_, err := extractSuggestion("no idea")

	require.Error(t, err)
}

func TestGeminiSuggesterRequiresAPIKey(t *testing.T) {
	s := NewGeminiSuggester("", "gemini-2.0-flash", nil)

	_, err := s.Suggest(context.Background(), "galera 9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestMockSuggesterRecordsCalls(t *testing.T) {
	mock := &MockSuggester{
		Suggestions: map[string]Suggestion{
			"galera 9": {Field: models.FieldTeensAdolescentes, Reason: "slang for the teen group"},
		},
	}

	suggestion, err := mock.Suggest(context.Background(), "galera 9")
	require.NoError(t, err)
	assert.Equal(t, models.FieldTeensAdolescentes, suggestion.Field)
	assert.Equal(t, []string{"galera 9"}, mock.Calls)

	mock.Err = errors.New("quota exceeded")
	_, err = mock.Suggest(context.Background(), "anything")
	assert.Error(t, err)
}
