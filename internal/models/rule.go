package models

// KeywordRule associates a set of normalized keyword phrases with a target
// form field. Phrases are stored lowercase, accent-free and single-spaced;
// matching is by substring against a normalized line.
type KeywordRule struct {
	Keywords []string `yaml:"keywords"`
	Field    FieldID  `yaml:"field"`
}

// MaxKeywordLen returns the length of the longest keyword phrase in the
// rule. It is the specificity measure used to order the effective table:
// longer phrases are strictly more specific and must shadow shorter ones.
func (r KeywordRule) MaxKeywordLen() int {
	max := 0
	for _, k := range r.Keywords {
		if len(k) > max {
			max = len(k)
		}
	}
	return max
}

// ContainsKeyword reports whether the rule already carries the phrase.
func (r KeywordRule) ContainsKeyword(keyword string) bool {
	for _, k := range r.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// SharesKeyword reports whether the two rules have at least one phrase in
// common.
func (r KeywordRule) SharesKeyword(other KeywordRule) bool {
	for _, k := range other.Keywords {
		if r.ContainsKeyword(k) {
			return true
		}
	}
	return false
}
