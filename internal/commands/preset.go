package commands

import (
	"fmt"
	"strings"

	"github.com/ruminaider/readme-maker/internal/presets"
)

// LoadPreset replaces the session's record with the named preset.
func LoadPreset(store *presets.Store, s *Session, name string) error {
	rec, ok, err := store.Get(name)
	if err != nil {
		return err
	}
	if !ok {
		names, err := store.Names()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("preset %q not found (no presets saved)", name)
		}
		return fmt.Errorf("preset %q not found (available: %s)", name, strings.Join(names, ", "))
	}
	s.Replace(rec)
	return nil
}

// SavePreset stores the session's record under name, or under a generated
// name when name is blank. It returns the name used.
func SavePreset(store *presets.Store, s *Session, name string) (string, error) {
	return store.Save(name, s.Record)
}

// DeletePresets removes each named preset. Names that do not exist are
// skipped silently.
func DeletePresets(store *presets.Store, names ...string) error {
	for _, name := range names {
		if err := store.Delete(name); err != nil {
			return fmt.Errorf("deleting preset %q: %w", name, err)
		}
	}
	return nil
}
