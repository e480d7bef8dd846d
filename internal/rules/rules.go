package rules

import (
	"sort"
	"strings"

	"connect/tally/internal/models"
)

// Effective merges user-taught rules with the defaults into the table used
// for matching. Custom rules come first so user overrides take precedence;
// a default rule is suppressed when a custom rule for the same field
// already shares one of its keywords. Exact duplicates (same field, same
// keyword set) are removed, and the result is stable-sorted descending by
// the longest keyword phrase in each rule so specific compound phrases
// match before single generic words.
func Effective(custom []models.KeywordRule) []models.KeywordRule {
	combined := make([]models.KeywordRule, 0, len(custom)+len(defaultRules))
	combined = append(combined, custom...)

	for _, def := range defaultRules {
		covered := false
		for _, c := range custom {
			if c.Field == def.Field && c.SharesKeyword(def) {
				covered = true
				break
			}
		}
		if !covered {
			combined = append(combined, def)
		}
	}

	combined = dedupe(combined)

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].MaxKeywordLen() > combined[j].MaxKeywordLen()
	})

	return combined
}

// dedupe removes rules with identical (field, sorted keyword set) identity,
// keeping the first occurrence.
func dedupe(in []models.KeywordRule) []models.KeywordRule {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, r := range in {
		key := identity(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func identity(r models.KeywordRule) string {
	keywords := append([]string{}, r.Keywords...)
	sort.Strings(keywords)
	return string(r.Field) + "|" + strings.Join(keywords, ",")
}

// Match walks the effective table in priority order and returns the first
// rule whose keyword set contains a phrase appearing as a substring of the
// normalized line, along with the literal phrase that matched.
func Match(table []models.KeywordRule, normalizedLine string) (models.FieldID, string, bool) {
	for _, rule := range table {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalizedLine, keyword) {
				return rule.Field, keyword, true
			}
		}
	}
	return "", "", false
}
