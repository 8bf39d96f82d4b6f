package game

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/lgbarn/chess-go/internal/errors"
)

const saveExt = ".json"

var validName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Store keeps saved games as JSON files in a directory.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// ValidName reports whether name may be used for a saved game.
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// List returns the names of saved games in sorted order. A missing
// directory holds no games.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", s.Dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), saveExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), saveExt)
		if ValidName(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a game is saved under name.
func (s *Store) Exists(name string) bool {
	if !ValidName(name) {
		return false
	}
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Save writes g under name, replacing any game saved under that name.
func (s *Store) Save(name string, g *Game) error {
	if !ValidName(name) {
		return fmt.Errorf("%q: %w", name, errors.ErrInvalidName)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", s.Dir)
	}

	f, err := os.Create(s.path(name))
	if err != nil {
		return errors.Wrapf(err, "saving %s", name)
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "saving %s", name)
	}
	return f.Close()
}

// Load reads the game saved under name.
func (s *Store) Load(name string) (*Game, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%q: %w", name, errors.ErrInvalidName)
	}
	f, err := os.Open(s.path(name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%q: %w", name, errors.ErrGameNotFound)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	}
	return g, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name+saveExt)
}
