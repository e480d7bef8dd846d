// Package parser turns freeform chat transcripts into per-field attendance
// totals. Each line is normalized, matched against the effective keyword
// table, and when that fails, disambiguated from the group context of the
// most recently resolved line.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"connect/tally/internal/logging"
	"connect/tally/internal/models"
	"connect/tally/internal/rules"
	"connect/tally/internal/textutils"
)

// MappingSource supplies the user-taught keyword rules merged into the
// effective table at parse time.
type MappingSource interface {
	LoadMappings() []models.KeywordRule
}

// Options tune parsing behavior.
type Options struct {
	// ServiceFallbackMaxLen bounds the final fallback: a line carrying a
	// number but no keyword or context match counts toward the main
	// service headcount only when its normalized form is at most this many
	// characters. Zero disables the fallback.
	ServiceFallbackMaxLen int
}

// DefaultOptions matches the behavior of the original form.
func DefaultOptions() Options {
	return Options{ServiceFallbackMaxLen: 15}
}

// Parser parses attendance transcripts. It is stateless across Parse calls;
// the group context used for disambiguation lives inside a single call.
type Parser struct {
	source MappingSource
	opts   Options
	logger logging.Logger
}

// New creates a Parser. A nil source means only the default keyword table
// is used.
func New(source MappingSource, opts Options, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{source: source, opts: opts, logger: logger}
}

// Generic role and relation terms that the default table deliberately
// omits; they are resolved from the preceding group context because
// transcripts list a role count right after the group's headcount line
// without repeating the group name.
var (
	roleTerm   = regexp.MustCompile(`\b(tios?|tias?|voluntarios?|voluntarias?|responsaveis|responsavel|aunts?|uncles?|volunteers?)\b`)
	motherTerm = regexp.MustCompile(`\b(maes?|mothers?)\b`)
)

// Parse analyzes rawText and returns the accumulated field totals plus a
// line-by-line decision log in input order. It never fails: every non-blank
// line yields either a Success or an Ignored outcome.
func (p *Parser) Parse(rawText string) models.ParseResult {
	result := models.NewParseResult()
	table := p.effectiveTable()
	lastGroup := models.GroupNone

	for _, line := range strings.Split(rawText, "\n") {
		original := strings.TrimSpace(line)
		clean := strings.TrimSpace(textutils.StripChatMetadata(original))

		// Blank lines, bare acknowledgements and metadata-only lines leave
		// no trace in the log.
		if clean == "" || textutils.IsAcknowledgement(clean) {
			continue
		}

		normalized := textutils.Normalize(textutils.SeparateDigitRuns(clean))
		quantity, hasNumber := textutils.FirstNumber(normalized)

		var field models.FieldID
		var keyword string
		resolved := false

		if hasNumber {
			field, keyword, resolved = rules.Match(table, normalized)
			if !resolved {
				field, keyword, resolved = p.resolveRoleTerm(normalized, lastGroup)
			}
			if !resolved {
				field, keyword, resolved = p.resolveMotherTerm(normalized, lastGroup)
			}
			if !resolved && p.opts.ServiceFallbackMaxLen > 0 && len(normalized) <= p.opts.ServiceFallbackMaxLen {
				// Short count-only lines are the main service headcount in
				// practice ("128", "culto 128" with a typo, ...).
				field = models.FieldCultoPresentes
				keyword = "culto (default)"
				resolved = true
			}
		}

		if resolved {
			result.Add(field, quantity)
			result.Log = append(result.Log, models.LineOutcome{
				Line:     original,
				Status:   models.StatusSuccess,
				Message:  fmt.Sprintf("Matched %d to %q (field %s)", quantity, keyword, field),
				Field:    field,
				Keyword:  keyword,
				Quantity: quantity,
			})
			lastGroup = models.GroupOf(field)

			p.logger.WithFields(
				logging.Field{Key: logging.FieldField, Value: field},
				logging.Field{Key: logging.FieldKeyword, Value: keyword},
				logging.Field{Key: logging.FieldQuantity, Value: quantity},
			).Debug("Line resolved")
			continue
		}

		result.Log = append(result.Log, models.LineOutcome{
			Line:    original,
			Status:  models.StatusIgnored,
			Message: "Not recognized. Teach a keyword for this line so it resolves next time.",
		})
		p.logger.WithField(logging.FieldLine, original).Debug("Line ignored")
	}

	return result
}

func (p *Parser) effectiveTable() []models.KeywordRule {
	if p.source == nil {
		return rules.Effective(nil)
	}
	return rules.Effective(p.source.LoadMappings())
}

// resolveRoleTerm handles generic aunt/uncle/volunteer terms: they belong
// to whichever group was counted last, defaulting to the Kids volunteers
// field when no group context exists yet.
func (p *Parser) resolveRoleTerm(normalizedLine string, lastGroup models.Group) (models.FieldID, string, bool) {
	term := roleTerm.FindString(normalizedLine)
	if term == "" {
		return "", "", false
	}

	var field models.FieldID
	switch lastGroup {
	case models.GroupBabies:
		field = models.FieldBabiesResponsaveis
	case models.GroupLittles:
		field = models.FieldLittlesVoluntarios
	case models.GroupTeens:
		field = models.FieldTeensTios
	default:
		field = models.FieldKidsTias
	}
	return field, term, true
}

// resolveMotherTerm handles the bare mother term, which only Babies and
// Littles distinguish; everything else defaults to the Kids mothers field.
func (p *Parser) resolveMotherTerm(normalizedLine string, lastGroup models.Group) (models.FieldID, string, bool) {
	term := motherTerm.FindString(normalizedLine)
	if term == "" {
		return "", "", false
	}

	var field models.FieldID
	switch lastGroup {
	case models.GroupBabies:
		field = models.FieldBabiesMaes
	case models.GroupLittles:
		field = models.FieldLittlesMaes
	default:
		field = models.FieldKidsMaes
	}
	return field, term, true
}
