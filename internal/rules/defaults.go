// Package rules holds the keyword-to-field mapping tables and the logic
// that merges the built-in defaults with user-taught rules into one
// priority-ordered effective table.
package rules

import "connect/tally/internal/models"

// defaultRules is the built-in mapping table. Compound phrases come before
// single generic terms; the bare aunt/uncle/volunteer and mother terms are
// deliberately absent because they are ambiguous and resolved from the
// group context of the preceding lines instead.
var defaultRules = []models.KeywordRule{
	{Keywords: []string{"culto"}, Field: models.FieldCultoPresentes},

	{Keywords: []string{"maes bebes", "mae bebes", "maes babies", "mae babies", "mothers babies"}, Field: models.FieldBabiesMaes},
	{Keywords: []string{"responsaveis bebes", "voluntarios bebes", "tios bebes", "tias bebes", "tias babies", "volunteers babies"}, Field: models.FieldBabiesResponsaveis},
	{Keywords: []string{"bebes", "babies", "bebe"}, Field: models.FieldBabiesCriancas},

	{Keywords: []string{"maes littles", "mae littles", "mothers littles"}, Field: models.FieldLittlesMaes},
	{Keywords: []string{"tias littles", "tios littles", "voluntarios littles", "volunteers littles"}, Field: models.FieldLittlesVoluntarios},
	{Keywords: []string{"littles", "pequenos"}, Field: models.FieldLittlesCriancas},

	{Keywords: []string{"maes kids", "mae kids", "mothers kids"}, Field: models.FieldKidsMaes},
	{Keywords: []string{"tias kids", "tio kids", "voluntarios kids", "volunteers kids"}, Field: models.FieldKidsTias},
	{Keywords: []string{"kids", "criancas", "crianca"}, Field: models.FieldKidsCriancas},

	{Keywords: []string{"tios teens", "tio teens", "voluntarios teens", "volunteers teens"}, Field: models.FieldTeensTios},
	{Keywords: []string{"teens", "adolescentes", "teen", "tees"}, Field: models.FieldTeensAdolescentes},
}

// Defaults returns a copy of the built-in mapping table.
func Defaults() []models.KeywordRule {
	out := make([]models.KeywordRule, len(defaultRules))
	copy(out, defaultRules)
	return out
}
