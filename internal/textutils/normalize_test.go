package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Culto", "culto"},
		{"strips accents", "Mães", "maes"},
		{"strips accents lowercase", "crianças", "criancas"},
		{"collapses whitespace", "  kids   10 ", "kids 10"},
		{"tabs and newlines", "teens\t\t5", "teens 5"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Mães  Bebês", "20KIDS", "  Tio(a) / Voluntário(a)  "}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeAccentInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("maes"), Normalize("Mães"))
	assert.Equal(t, "maes", Normalize("Mães"))
}

func TestStripChatMetadata(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whatsapp prefix", "[01/01/2024, 10:00:00] John: Kids 15", "Kids 15"},
		{"no prefix", "Kids 15", "Kids 15"},
		{"prefix only", "[01/01/2024, 10:00:00] John: ", ""},
		{"bracket without sender colon stays", "[info] no sender here", "[info] no sender here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripChatMetadata(tt.input))
		})
	}
}

func TestSeparateDigitRuns(t *testing.T) {
	assert.Equal(t, "20 kids", SeparateDigitRuns("20kids"))
	assert.Equal(t, "20 kids", SeparateDigitRuns("20 kids"))
	assert.Equal(t, "kids 15", SeparateDigitRuns("kids 15"))
	assert.Equal(t, "3 tias e 2 tios", SeparateDigitRuns("3tias e 2tios"))
}

func TestFirstNumber(t *testing.T) {
	n, ok := FirstNumber("kids 15 e 3 tias")
	assert.True(t, ok)
	assert.Equal(t, 15, n)

	n, ok = FirstNumber("culto 0")
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = FirstNumber("sem numero")
	assert.False(t, ok)

	_, ok = FirstNumber("")
	assert.False(t, ok)
}

func TestIsAcknowledgement(t *testing.T) {
	assert.True(t, IsAcknowledgement("ok"))
	assert.True(t, IsAcknowledgement("  OK  "))
	assert.True(t, IsAcknowledgement("Ok"))
	assert.False(t, IsAcknowledgement("ok ok"))
	assert.False(t, IsAcknowledgement("okay"))
	assert.False(t, IsAcknowledgement(""))
}
