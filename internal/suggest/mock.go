package suggest

import "context"

// MockSuggester is a test double returning canned suggestions per line.
type MockSuggester struct {
	Suggestions map[string]Suggestion
	Err         error
	Calls       []string
}

func (m *MockSuggester) Suggest(_ context.Context, line string) (Suggestion, error) {
	m.Calls = append(m.Calls, line)
	if m.Err != nil {
		return Suggestion{}, m.Err
	}
	return m.Suggestions[line], nil
}
