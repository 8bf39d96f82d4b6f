package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Normal {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Normal)
	}
	if cfg.White != Human || cfg.Black != Computer {
		t.Errorf("players = %v/%v, want Human/Computer", cfg.White, cfg.Black)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if !strings.HasSuffix(cfg.SaveDir, filepath.Join("chess-go", "saves")) {
		t.Errorf("SaveDir = %q, want XDG data path ending in chess-go/saves", cfg.SaveDir)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout/stderr")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

func TestConfig_Player(t *testing.T) {
	cfg := NewConfigBuilder().WithPlayers(Computer, Human).Build()
	testutil.AssertEqual(t, cfg.Player(chess.White), Computer)
	testutil.AssertEqual(t, cfg.Player(chess.Black), Human)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }},
		{"verbosity negative", func(c *Config) { c.Verbosity = -1 }},
		{"bad player kind", func(c *Config) { c.White = PlayerKind(9) }},
		{"empty save dir", func(c *Config) { c.SaveDir = "" }},
		{"nil log", func(c *Config) { c.LogFile = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
		})
	}
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithPlayers(Computer, Computer).
		WithSeed(7).
		WithSaveDir("/tmp/saves").
		WithSVGFile("board.svg").
		WithVerbosity(Verbose).
		WithOutputFile(&out).
		WithLogFile(&log).
		Build()

	testutil.AssertEqual(t, cfg.White, Computer)
	testutil.AssertEqual(t, cfg.Black, Computer)
	testutil.AssertEqual(t, cfg.Seed, int64(7))
	testutil.AssertEqual(t, cfg.SaveDir, "/tmp/saves")
	testutil.AssertEqual(t, cfg.SVGFile, "board.svg")
	testutil.AssertEqual(t, cfg.Verbosity, Verbose)
	testutil.AssertTrue(t, cfg.OutputFile == &out, "output writer")
	testutil.AssertTrue(t, cfg.LogFile == &log, "log writer")
}

func TestConfig_Logf(t *testing.T) {
	var log bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&log).WithVerbosity(Normal).Build()

	cfg.Logf(Normal, "saved %s", "game1")
	cfg.Logf(Verbose, "hidden")

	testutil.AssertEqual(t, log.String(), "saved game1\n")
}
