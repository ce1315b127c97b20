package file

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultFileName is the settings file name inside the kanji home directory.
const DefaultFileName = "config.toml"

// ConfigStore is a TOML-backed driven.ConfigStore.
// Keys are dot separated ("search.match") and are written as TOML tables,
// so the file on disk reads as [search] match = "exact".
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore opens the settings file at filePath.
// If filePath is empty, defaults to ~/.kanji/config.toml.
// A missing file is not an error; it is created on the first Set.
func NewConfigStore(filePath string) (*ConfigStore, error) {
	if filePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, ".kanji", DefaultFileName)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filePath,
		data:     make(map[string]any),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the raw value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString returns the string under key, or "".
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt returns the integer under key, or 0.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)

	// TOML integers decode as int64.
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Set stores value under key and rewrites the file.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Unset drops key and rewrites the file if it was present.
func (s *ConfigStore) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.save()
}

// Keys returns the stored keys in ascending order.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data))
}

// Path returns the settings file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// save writes the file; the caller must hold the lock.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(nestKeys(s.data))
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write settings %s: %w", s.filePath, err)
	}
	return nil
}

// load replaces the in-memory values with the file contents.
// A missing file reads as empty.
func (s *ConfigStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		s.data = make(map[string]any)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings %s: %w", s.filePath, err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse settings %s: %w", s.filePath, err)
	}
	s.data = flattenKeys(loaded, "")
	return nil
}

// flattenKeys turns {"a": {"b": 1}} into {"a.b": 1}.
func flattenKeys(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any, len(m))
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenKeys(nested, fullKey) {
				result[k] = v
			}
			continue
		}
		result[fullKey] = value
	}
	return result
}

// nestKeys is the inverse of flattenKeys.
// A key whose prefix is already a scalar stays flat at the deepest table
// that can hold it; TOML quotes it on write.
func nestKeys(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	root := make(map[string]any)
	for _, key := range keys {
		value := flat[key]
		parts := strings.Split(key, ".")
		table := root
		i := 0
		for ; i < len(parts)-1; i++ {
			next, exists := table[parts[i]]
			if !exists {
				child := make(map[string]any)
				table[parts[i]] = child
				table = child
				continue
			}
			child, ok := next.(map[string]any)
			if !ok {
				break
			}
			table = child
		}
		table[strings.Join(parts[i:], ".")] = value
	}
	return root
}
