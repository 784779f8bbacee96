// Package presets persists named profile snapshots in a single JSON file.
//
// Every mutation reads the whole file, changes one entry and writes the
// whole file back through a temp file and rename. There is no locking: two
// processes saving at the same time can lose one of the writes. That is
// acceptable for a single-user tool.
package presets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	"github.com/ruminaider/readme-maker/internal/profile"
)

// ErrStoreIO marks failures reading or writing the backing file, other
// than the file not existing yet.
var ErrStoreIO = errors.New("preset store I/O failure")

// NamePrefix prefixes generated preset names.
const NamePrefix = "preset-"

// Store reads and writes presets in one file.
type Store struct {
	path string
}

// New returns a Store backed by the file at path. The file does not need
// to exist.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LoadAll returns every preset. A missing file yields an empty map.
func (s *Store) LoadAll() (map[string]profile.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]profile.Record{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStoreIO, s.path, err)
	}

	all := map[string]profile.Record{}
	if len(bytes.TrimSpace(data)) == 0 {
		return all, nil
	}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrStoreIO, s.path, err)
	}
	// A literal null decodes to a nil map.
	if all == nil {
		all = map[string]profile.Record{}
	}
	for name, rec := range all {
		rec.Normalize()
		all[name] = rec
	}
	return all, nil
}

// SaveAll replaces the backing file with the given presets.
func (s *Store) SaveAll(all map[string]profile.Record) error {
	if all == nil {
		all = map[string]profile.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(all); err != nil {
		return fmt.Errorf("%w: encoding presets: %v", ErrStoreIO, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrStoreIO, dir, err)
		}
	}
	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStoreIO, s.path, err)
	}
	return nil
}

// Save stores rec under name, overwriting any existing entry. A blank name
// is replaced by a generated one. It returns the name actually used.
func (s *Store) Save(name string, rec profile.Record) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = GenerateName()
	}

	all, err := s.LoadAll()
	if err != nil {
		return "", err
	}
	rec.Normalize()
	all[name] = rec
	if err := s.SaveAll(all); err != nil {
		return "", err
	}
	return name, nil
}

// Delete removes the named preset. Deleting a name that does not exist is
// not an error.
func (s *Store) Delete(name string) error {
	all, err := s.LoadAll()
	if err != nil {
		return err
	}
	if _, ok := all[name]; !ok {
		return nil
	}
	delete(all, name)
	return s.SaveAll(all)
}

// Get returns the named preset and whether it exists.
func (s *Store) Get(name string) (profile.Record, bool, error) {
	all, err := s.LoadAll()
	if err != nil {
		return profile.Record{}, false, err
	}
	rec, ok := all[name]
	return rec, ok, nil
}

// Names returns the sorted preset names.
func (s *Store) Names() ([]string, error) {
	all, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// GenerateName returns "preset-" followed by six lowercase hex characters
// taken from a random UUID.
func GenerateName() string {
	id := uuid.New()
	return NamePrefix + strings.ReplaceAll(id.String(), "-", "")[:6]
}

// Summary describes a preset in one line for listings.
func Summary(rec profile.Record) string {
	var parts []string
	if rec.Title != "" {
		parts = append(parts, rec.Title)
	}
	if n := len(rec.Projects); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, pluralize("project", n)))
	}
	if n := len(rec.Tech); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, pluralize("skill", n)))
	}
	if len(parts) == 0 {
		return rec.Name
	}
	return rec.Name + " (" + strings.Join(parts, ", ") + ")"
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
