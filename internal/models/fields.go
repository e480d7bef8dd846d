// Package models provides the data structures used throughout the application.
package models

// FieldID names one numeric input of the destination attendance form.
// The universe of fields is fixed by the form; the parser never invents
// new ones.
type FieldID string

// The numeric inputs of the Connect attendance form.
const (
	FieldCultoPresentes     FieldID = "cultoPresentes"
	FieldBabiesCriancas     FieldID = "babiesCriancas"
	FieldBabiesMaes         FieldID = "babiesMaes"
	FieldBabiesResponsaveis FieldID = "babiesResponsaveis"
	FieldLittlesCriancas    FieldID = "littlesCriancas"
	FieldLittlesMaes        FieldID = "littlesMaes"
	FieldLittlesVoluntarios FieldID = "littlesVoluntarios"
	FieldKidsCriancas       FieldID = "kidsCriancas"
	FieldKidsMaes           FieldID = "kidsMaes"
	FieldKidsTias           FieldID = "kidsTias"
	FieldTeensAdolescentes  FieldID = "teensAdolescentes"
	FieldTeensTios          FieldID = "teensTios"
)

// Group is the coarse age-group classification of a field. It is derived
// from the FieldID and used only for contextual disambiguation.
type Group string

const (
	GroupNone    Group = ""
	GroupCulto   Group = "Culto"
	GroupBabies  Group = "Babies"
	GroupLittles Group = "Littles"
	GroupKids    Group = "Kids"
	GroupTeens   Group = "Teens"
)

// Field describes one form input: its identifier, derived group and the
// labels used when exporting totals.
type Field struct {
	ID          FieldID
	Group       Group
	Category    string
	Description string
}

// fieldRegistry lists every form input in form order. This is the single
// source of truth for the field universe.
var fieldRegistry = []Field{
	{ID: FieldCultoPresentes, Group: GroupCulto, Category: "Culto", Description: "Presentes"},
	{ID: FieldBabiesCriancas, Group: GroupBabies, Category: "Babies", Description: "Bebês"},
	{ID: FieldBabiesMaes, Group: GroupBabies, Category: "Babies", Description: "Mães"},
	{ID: FieldBabiesResponsaveis, Group: GroupBabies, Category: "Babies", Description: "Tio(a) / Voluntário(a)"},
	{ID: FieldLittlesCriancas, Group: GroupLittles, Category: "Littles", Description: "Crianças"},
	{ID: FieldLittlesMaes, Group: GroupLittles, Category: "Littles", Description: "Mães"},
	{ID: FieldLittlesVoluntarios, Group: GroupLittles, Category: "Littles", Description: "Tio(a) / Voluntário(a)"},
	{ID: FieldKidsCriancas, Group: GroupKids, Category: "Kids", Description: "Crianças"},
	{ID: FieldKidsMaes, Group: GroupKids, Category: "Kids", Description: "Mães"},
	{ID: FieldKidsTias, Group: GroupKids, Category: "Kids", Description: "Tio(a) / Voluntário(a)"},
	{ID: FieldTeensAdolescentes, Group: GroupTeens, Category: "Teens", Description: "Adolescentes"},
	{ID: FieldTeensTios, Group: GroupTeens, Category: "Teens", Description: "Tio(a) / Voluntário(a)"},
}

// Fields returns the field universe in form order.
func Fields() []Field {
	out := make([]Field, len(fieldRegistry))
	copy(out, fieldRegistry)
	return out
}

// LookupField returns the field definition for id.
func LookupField(id FieldID) (Field, bool) {
	for _, f := range fieldRegistry {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// ValidField reports whether id names a known form input.
func ValidField(id FieldID) bool {
	_, ok := LookupField(id)
	return ok
}

// GroupOf returns the group a field belongs to, or GroupNone for an
// unknown field.
func GroupOf(id FieldID) Group {
	f, ok := LookupField(id)
	if !ok {
		return GroupNone
	}
	return f.Group
}
