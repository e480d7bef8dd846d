package store

import (
	"connect/tally/internal/models"
)

// MockMappingStore is an in-memory stand-in for MappingStore in tests.
type MockMappingStore struct {
	Mappings []models.KeywordRule

	// Error flags for exercising failure paths.
	SaveError error
}

// LoadMappings returns a copy of the in-memory rules.
func (m *MockMappingStore) LoadMappings() []models.KeywordRule {
	out := make([]models.KeywordRule, len(m.Mappings))
	copy(out, m.Mappings)
	return out
}

// SaveMapping applies the same merge semantics as the real store, minus the
// disk round-trip.
func (m *MockMappingStore) SaveMapping(rule models.KeywordRule) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	cleaned := sanitizeRule(rule)
	if len(cleaned.Keywords) == 0 {
		return &InvalidRuleError{Reason: "no non-empty keywords"}
	}
	if !models.ValidField(cleaned.Field) {
		return &InvalidRuleError{Field: string(rule.Field), Reason: "unknown target field"}
	}
	for i := range m.Mappings {
		if m.Mappings[i].Field != cleaned.Field || !m.Mappings[i].SharesKeyword(cleaned) {
			continue
		}
		for _, k := range cleaned.Keywords {
			if !m.Mappings[i].ContainsKeyword(k) {
				m.Mappings[i].Keywords = append(m.Mappings[i].Keywords, k)
			}
		}
		return nil
	}
	m.Mappings = append(m.Mappings, cleaned)
	return nil
}

// Clear drops the in-memory rules.
func (m *MockMappingStore) Clear() error {
	m.Mappings = nil
	return nil
}
