package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connect/tally/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *models.ParseResult {
	result := models.NewParseResult()
	result.Totals[models.FieldCultoPresentes] = 120
	result.Totals[models.FieldKidsCriancas] = 10
	result.Totals[models.FieldKidsTias] = 5
	return &result
}

func TestRowsSkipsZeroTotalsByDefault(t *testing.T) {
	rows := Rows(sampleResult(), Options{})

	// Three populated fields plus the grand-total row.
	require.Len(t, rows, 4)
	assert.Equal(t, "Culto", rows[0].Category)
	assert.Equal(t, 120, rows[0].Count)
	assert.Equal(t, "Total", rows[3].Category)
	assert.Equal(t, 135, rows[3].Count)
}

func TestRowsIncludeZeroRows(t *testing.T) {
	rows := Rows(sampleResult(), Options{IncludeZeroRows: true})

	// Every form field plus the grand-total row, in form order.
	require.Len(t, rows, len(models.Fields())+1)
	assert.Equal(t, "cultoPresentes", rows[0].Field)
	assert.Equal(t, "teensTios", rows[len(rows)-2].Field)
	assert.Zero(t, rows[len(rows)-2].Count)
}

func TestRowsEmptyResultStillHasTotal(t *testing.T) {
	empty := models.NewParseResult()
	rows := Rows(&empty, Options{})

	require.Len(t, rows, 1)
	assert.Equal(t, "Total", rows[0].Category)
	assert.Zero(t, rows[0].Count)
}

func TestWriteTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTotals(&buf, sampleResult(), Options{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Category,Description,Field,Count", strings.TrimSpace(lines[0]))
	assert.Contains(t, buf.String(), "Culto,Presentes,cultoPresentes,120")
	assert.Contains(t, buf.String(), "Total,Soma geral,total,135")
}

func TestWriteTotalsNilResult(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteTotals(&buf, nil, Options{}))
}

func TestWriteTotalsFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "totals.csv")

	require.NoError(t, WriteTotalsFile(sampleResult(), path, Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Kids,Crianças,kidsCriancas,10")
}
