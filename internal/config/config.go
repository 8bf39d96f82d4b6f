// Package config provides configuration for chess-go.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// appDir is the per-user directory name under the XDG base directories.
const appDir = "chess-go"

// PlayerKind selects who plays a side.
type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

// String returns the string representation of a player kind.
func (k PlayerKind) String() string {
	if k == Computer {
		return "Computer"
	}
	return "Human"
}

// Verbosity levels.
const (
	Quiet   = 0 // nothing beyond the game itself
	Normal  = 1 // game events (saves, loads, results)
	Verbose = 2 // AI move scoring trace
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Who plays each side
	White PlayerKind
	Black PlayerKind

	// Seed for AI tie-breaking; 0 means seed from the clock.
	Seed int64

	// Directory holding saved games.
	SaveDir string

	// If set, an SVG image of the board is written here after every move.
	SVGFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		White:      Human,
		Black:      Computer,
		SaveDir:    DefaultSaveDir(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// DefaultSaveDir returns the XDG data directory used for saved games.
func DefaultSaveDir() string {
	return filepath.Join(xdg.DataHome, appDir, "saves")
}

// Player returns who plays side.
func (c *Config) Player(side chess.Side) PlayerKind {
	if side == chess.White {
		return c.White
	}
	return c.Black
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w", c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	for _, k := range []PlayerKind{c.White, c.Black} {
		if k != Human && k != Computer {
			return fmt.Errorf("player kind %d: %w", k, errors.ErrInvalidConfig)
		}
	}
	if c.SaveDir == "" {
		return fmt.Errorf("empty save directory: %w", errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("missing output stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level && c.LogFile != nil {
		fmt.Fprintf(c.LogFile, format+"\n", args...)
	}
}
