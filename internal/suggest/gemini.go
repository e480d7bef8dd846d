package suggest

import (
	"context"
	"fmt"
	"strings"

	"connect/tally/internal/logging"
	"connect/tally/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSuggester asks the Google Gemini API which form field an
// unrecognized line most likely belongs to.
type GeminiSuggester struct {
	apiKey    string
	modelName string
	logger    logging.Logger

	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiSuggester creates a suggester backed by the Gemini API. The
// client connection is established lazily on the first Suggest call.
func NewGeminiSuggester(apiKey, modelName string, logger logging.Logger) *GeminiSuggester {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &GeminiSuggester{
		apiKey:    apiKey,
		modelName: modelName,
		logger:    logger,
	}
}

func (s *GeminiSuggester) ensureClient(ctx context.Context) error {
	if s.client != nil {
		return nil
	}
	if s.apiKey == "" {
		return fmt.Errorf("gemini api key not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	s.client = client
	s.model = client.GenerativeModel(s.modelName)
	return nil
}

// Close releases the underlying API client, if one was created.
func (s *GeminiSuggester) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	s.model = nil
	return err
}

// Suggest asks Gemini to pick a field for the line. The returned field is
// always validated against the form's field universe.
func (s *GeminiSuggester) Suggest(ctx context.Context, line string) (Suggestion, error) {
	if err := s.ensureClient(ctx); err != nil {
		return Suggestion{}, err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "gemini_suggest"},
		logging.Field{Key: logging.FieldLine, Value: line},
	).Debug("Requesting field suggestion from Gemini")

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildPrompt(line)))
	if err != nil {
		return Suggestion{}, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Suggestion{}, fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	suggestion, err := extractSuggestion(responseText)
	if err != nil {
		return Suggestion{}, err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldLine, Value: line},
		logging.Field{Key: logging.FieldField, Value: string(suggestion.Field)},
	).Debug("Gemini suggested a field")

	return suggestion, nil
}

func buildPrompt(line string) string {
	var fields strings.Builder
	for _, f := range models.Fields() {
		fmt.Fprintf(&fields, "- %s: %s / %s\n", f.ID, f.Category, f.Description)
	}

	return fmt.Sprintf(`The following line comes from a church attendance chat report
(Portuguese or English) and could not be matched to a form field:

%s

Assign it to exactly one of these field identifiers:
%s
Respond in this format:
Field: [field identifier]
Reason: [brief explanation]`, line, fields.String())
}

// extractSuggestion parses the structured Field/Reason response. A reply
// naming an unknown field is rejected rather than guessed at.
func extractSuggestion(response string) (Suggestion, error) {
	var out Suggestion
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "Field:"); ok {
			out.Field = models.FieldID(strings.TrimSpace(after))
		} else if after, ok := strings.CutPrefix(line, "Reason:"); ok {
			out.Reason = strings.TrimSpace(after)
		}
	}

	if out.Field == "" {
		// Fall back to scanning the reply for a known identifier.
		for _, f := range models.Fields() {
			if strings.Contains(response, string(f.ID)) {
				out.Field = f.ID
				break
			}
		}
	}
	if !models.ValidField(out.Field) {
		return Suggestion{}, fmt.Errorf("Gemini returned unknown field %q", out.Field)
	}
	return out, nil
}
