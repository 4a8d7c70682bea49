package recent

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const maxRecent = 10

// Entry is one title the user picked.
type Entry struct {
	Section    string    `json:"section"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	LastAccess time.Time `json:"last_access"`
}

type Store struct {
	Entries []Entry `json:"entries"`
	path    string
	now     func() time.Time
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nestview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nestview")
}

// DefaultPath is where Load keeps the history.
func DefaultPath() string {
	return filepath.Join(configDir(), "recent.json")
}

func Load() (*Store, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the store at path. A missing or corrupt file yields an
// empty store that will overwrite it on Save.
func LoadFrom(path string) (*Store, error) {
	s := &Store{path: path, Entries: []Entry{}, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		s.Entries = []Entry{}
		return s, nil
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Add records a pick, refreshing the entry if the title was picked before.
func (s *Store) Add(section, name string, year int) {
	now := s.now()
	for i, e := range s.Entries {
		if e.Section == section && e.Name == name {
			s.Entries[i].LastAccess = now
			s.Entries[i].Year = year
			s.prune()
			return
		}
	}

	s.Entries = append(s.Entries, Entry{
		Section:    section,
		Name:       name,
		Year:       year,
		LastAccess: now,
	})

	s.prune()
}

func (s *Store) prune() {
	sort.SliceStable(s.Entries, func(i, j int) bool {
		return s.Entries[i].LastAccess.After(s.Entries[j].LastAccess)
	})

	if len(s.Entries) > maxRecent*3 {
		s.Entries = s.Entries[:maxRecent*3]
	}
}

// Latest returns up to limit entries, newest first.
func (s *Store) Latest(limit int) []Entry {
	limit = min(max(limit, 0), len(s.Entries))
	return append([]Entry(nil), s.Entries[:limit]...)
}

func (s *Store) Remove(section, name string) {
	var filtered []Entry
	for _, e := range s.Entries {
		if !(e.Section == section && e.Name == name) {
			filtered = append(filtered, e)
		}
	}
	s.Entries = filtered
}
