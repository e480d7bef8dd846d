// Package store persists the user-taught keyword mappings. The custom
// table lives in a single versioned YAML file; the built-in defaults never
// touch disk.
package store

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"connect/tally/internal/logging"
	"connect/tally/internal/models"
	"connect/tally/internal/textutils"
)

// SchemaVersion tags the on-disk layout so future migrations have
// something to key on. The original store had no version field at all.
const SchemaVersion = 1

// DefaultMappingsFile is the file name looked up in the standard config
// locations when no explicit path is configured.
const DefaultMappingsFile = "mappings.yaml"

// mappingsDocument is the on-disk layout of the custom mapping table.
type mappingsDocument struct {
	Version  int                  `yaml:"version"`
	Mappings []models.KeywordRule `yaml:"mappings"`
}

// MappingStore manages loading and saving of the custom keyword mappings.
// The read-modify-write cycle in SaveMapping is guarded by a process-wide
// mutex; the table is small enough that one lock suffices.
type MappingStore struct {
	File   string
	mu     sync.Mutex
	logger logging.Logger
}

// NewMappingStore creates a store persisting to the given file. An empty
// file name falls back to DefaultMappingsFile resolution.
func NewMappingStore(file string, logger logging.Logger) *MappingStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &MappingStore{File: file, logger: logger}
}

// FindConfigFile looks for filename in the standard locations: an absolute
// path as-is, then the working directory, ./config, and
// ~/.config/tally.
func (s *MappingStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "tally", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *MappingStore) fileName() string {
	if s.File != "" {
		return s.File
	}
	return DefaultMappingsFile
}

// LoadMappings reads the custom rules from disk. A missing, unreadable or
// corrupt file yields an empty set rather than an error: a broken custom
// table must never take the parser down. Entries with no usable keywords
// or an unknown target field are filtered out.
func (s *MappingStore) LoadMappings() []models.KeywordRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *MappingStore) loadLocked() []models.KeywordRule {
	filePath, err := s.FindConfigFile(s.fileName())
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, filePath).Warn("Could not read custom mappings, continuing without them")
		return nil
	}

	var doc mappingsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, filePath).Warn("Custom mappings file is corrupt, continuing without it")
		return nil
	}

	valid := make([]models.KeywordRule, 0, len(doc.Mappings))
	for _, rule := range doc.Mappings {
		cleaned := sanitizeRule(rule)
		if len(cleaned.Keywords) == 0 {
			s.logger.WithField(logging.FieldField, rule.Field).Warn("Dropping custom mapping without keywords")
			continue
		}
		if !models.ValidField(cleaned.Field) {
			s.logger.WithField(logging.FieldField, rule.Field).Warn("Dropping custom mapping for unknown field")
			continue
		}
		valid = append(valid, cleaned)
	}

	s.logger.WithField(logging.FieldCount, len(valid)).Debug("Loaded custom keyword mappings")
	return valid
}

// SaveMapping normalizes the rule's keywords and persists it. When an
// existing custom rule targets the same field and shares a keyword, the new
// keywords are merged into it; otherwise the rule is appended. Persistence
// failures are returned to the caller so the teach operation is never
// silently lost.
func (s *MappingStore) SaveMapping(rule models.KeywordRule) error {
	cleaned := sanitizeRule(rule)
	if len(cleaned.Keywords) == 0 {
		return &InvalidRuleError{Reason: "no non-empty keywords"}
	}
	if !models.ValidField(cleaned.Field) {
		return &InvalidRuleError{Field: string(rule.Field), Reason: "unknown target field"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mappings := s.loadLocked()

	merged := false
	for i := range mappings {
		if mappings[i].Field != cleaned.Field || !mappings[i].SharesKeyword(cleaned) {
			continue
		}
		for _, k := range cleaned.Keywords {
			if !mappings[i].ContainsKeyword(k) {
				mappings[i].Keywords = append(mappings[i].Keywords, k)
			}
		}
		merged = true
		break
	}
	if !merged {
		mappings = append(mappings, cleaned)
	}

	if err := s.writeLocked(mappings); err != nil {
		return err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldField, Value: cleaned.Field},
		logging.Field{Key: logging.FieldCount, Value: len(mappings)},
	).Info("Saved custom keyword mapping")
	return nil
}

// Clear removes the persisted custom table. A store that was never written
// is already clear.
func (s *MappingStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filePath, err := s.FindConfigFile(s.fileName())
	if err != nil {
		return nil
	}
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return &PersistError{Path: filePath, Err: err}
	}
	return nil
}

func (s *MappingStore) writeLocked(mappings []models.KeywordRule) error {
	filePath, err := s.FindConfigFile(s.fileName())
	if err != nil {
		// First write: use the configured path as given.
		filePath = s.fileName()
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &PersistError{Path: filePath, Err: err}
		}
	}

	data, err := yaml.Marshal(mappingsDocument{Version: SchemaVersion, Mappings: mappings})
	if err != nil {
		return &PersistError{Path: filePath, Err: err}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &PersistError{Path: filePath, Err: err}
	}
	return nil
}

// sanitizeRule normalizes every keyword and drops the ones that normalize
// to the empty string.
func sanitizeRule(rule models.KeywordRule) models.KeywordRule {
	keywords := make([]string, 0, len(rule.Keywords))
	for _, k := range rule.Keywords {
		normalized := textutils.Normalize(k)
		if normalized == "" {
			continue
		}
		keywords = append(keywords, normalized)
	}
	return models.KeywordRule{Keywords: keywords, Field: rule.Field}
}
