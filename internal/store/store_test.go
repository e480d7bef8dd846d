package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connect/tally/internal/logging"
	"connect/tally/internal/models"
)

func newTestStore(t *testing.T) (*MappingStore, string) {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "mappings.yaml")
	return NewMappingStore(file, &logging.MockLogger{}), file
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestLoadMappingsMissingFile(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.LoadMappings())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s, file := newTestStore(t)

	err := s.SaveMapping(models.KeywordRule{
		Keywords: []string{"Galera"},
		Field:    models.FieldTeensAdolescentes,
	})
	require.NoError(t, err)

	// Keywords come back normalized, and the schema carries a version tag.
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: 1")

	loaded := s.LoadMappings()
	require.Len(t, loaded, 1)
	assert.Equal(t, models.FieldTeensAdolescentes, loaded[0].Field)
	assert.Equal(t, []string{"galera"}, loaded[0].Keywords)

	// A fresh store over the same file sees the persisted rule.
	again := NewMappingStore(file, &logging.MockLogger{})
	assert.Equal(t, loaded, again.LoadMappings())
}

func TestSaveMergesSharedKeywordSameField(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SaveMapping(models.KeywordRule{
		Keywords: []string{"galera"},
		Field:    models.FieldTeensAdolescentes,
	}))
	require.NoError(t, s.SaveMapping(models.KeywordRule{
		Keywords: []string{"galera", "rapaziada"},
		Field:    models.FieldTeensAdolescentes,
	}))

	loaded := s.LoadMappings()
	require.Len(t, loaded, 1)
	assert.ElementsMatch(t, []string{"galera", "rapaziada"}, loaded[0].Keywords)
}

func TestSaveAppendsWhenNoSharedKeyword(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SaveMapping(models.KeywordRule{
		Keywords: []string{"galera"},
		Field:    models.FieldTeensAdolescentes,
	}))
	require.NoError(t, s.SaveMapping(models.KeywordRule{
		Keywords: []string{"juventude"},
		Field:    models.FieldTeensAdolescentes,
	}))

	assert.Len(t, s.LoadMappings(), 2)
}

func TestSaveRejectsUnknownField(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.SaveMapping(models.KeywordRule{
		Keywords: []string{"galera"},
		Field:    "noSuchField",
	})
	var invalidErr *InvalidRuleError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestSaveRejectsEmptyKeywords(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.SaveMapping(models.KeywordRule{
		Keywords: []string{"", "   "},
		Field:    models.FieldKidsCriancas,
	})
	var invalidErr *InvalidRuleError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestSaveSurfacesWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// Point the store at a path whose parent is a plain file, so the write
	// must fail.
	blocker := filepath.Join(dir, "blocker")
	writeFile(t, blocker, "not a directory")
	s := NewMappingStore(filepath.Join(blocker, "mappings.yaml"), &logging.MockLogger{})

	err := s.SaveMapping(models.KeywordRule{
		Keywords: []string{"galera"},
		Field:    models.FieldTeensAdolescentes,
	})
	var persistErr *PersistError
	assert.ErrorAs(t, err, &persistErr)
}

func TestLoadMappingsCorruptFile(t *testing.T) {
	s, file := newTestStore(t)
	writeFile(t, file, "{not: valid: yaml: at all}")

	assert.Empty(t, s.LoadMappings())
}

func TestLoadMappingsFiltersInvalidEntries(t *testing.T) {
	s, file := newTestStore(t)
	writeFile(t, file, `version: 1
mappings:
  - keywords: ["galera"]
    field: teensAdolescentes
  - keywords: []
    field: kidsCriancas
  - keywords: ["fantasma"]
    field: noSuchField
`)

	loaded := s.LoadMappings()
	require.Len(t, loaded, 1)
	assert.Equal(t, models.FieldTeensAdolescentes, loaded[0].Field)
}

func TestClear(t *testing.T) {
	s, file := newTestStore(t)

	require.NoError(t, s.SaveMapping(models.KeywordRule{
		Keywords: []string{"galera"},
		Field:    models.FieldTeensAdolescentes,
	}))
	require.NoError(t, s.Clear())

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, s.LoadMappings())

	// Clearing an already-clear store is fine.
	assert.NoError(t, s.Clear())
}
