package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func TestStoreSaveLoad(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "saves"))

	names, err := s.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(names), 0, "missing directory lists nothing")

	g := New()
	play(t, g, "g1f3")
	testutil.AssertNoError(t, s.Save("club_night", g))
	testutil.AssertNoError(t, s.Save("A1", New()))
	testutil.AssertTrue(t, s.Exists("club_night"))
	testutil.AssertFalse(t, s.Exists("missing"))

	names, err = s.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, names, []string{"A1", "club_night"})

	got, err := s.Load("club_night")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.Layout(got.Board), testutil.Layout(g.Board))
	testutil.AssertEqual(t, got.ToMove, g.ToMove)
}

func TestStoreOverwrite(t *testing.T) {
	s := NewStore(t.TempDir())
	testutil.AssertNoError(t, s.Save("g", New()))

	g := New()
	play(t, g, "e2e4", "e7e5")
	testutil.AssertNoError(t, s.Save("g", g))

	got, err := s.Load("g")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Turn, 2)
}

func TestStoreErrors(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	testutil.AssertErrorIs(t, s.Save("../escape", New()), errors.ErrInvalidName)
	testutil.AssertErrorIs(t, s.Save("", New()), errors.ErrInvalidName)

	_, err := s.Load("nothing_here")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)

	_, err = s.Load("bad name")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidName)

	testutil.AssertNoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	_, err = s.Load("broken")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)

	// Files that are not saves are not listed
	testutil.AssertNoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	names, err := s.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, names, []string{"broken"})
}

func TestValidName(t *testing.T) {
	for name, want := range map[string]bool{
		"game1": true, "My_Game": true, "": false, "a b": false, "x.y": false, "../z": false,
	} {
		if got := ValidName(name); got != want {
			t.Errorf("ValidName(%q) = %v; want %v", name, got, want)
		}
	}
}
