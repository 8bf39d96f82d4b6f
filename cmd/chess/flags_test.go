package main

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-go/internal/config"
	chesserrors "github.com/lgbarn/chess-go/internal/errors"
)

func TestParsePlayerKind(t *testing.T) {
	tests := []struct {
		in      string
		want    config.PlayerKind
		wantErr bool
	}{
		{"human", config.Human, false},
		{"H", config.Human, false},
		{"computer", config.Computer, false},
		{"ai", config.Computer, false},
		{"c", config.Computer, false},
		{"robot", config.Human, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePlayerKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidConfig) {
					t.Errorf("parsePlayerKind(%q) error = %v, want ErrInvalidConfig", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePlayerKind(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parsePlayerKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyPlayerFlags(t *testing.T) {
	defer func(w, b string) { *whitePlayer, *blackPlayer = w, b }(*whitePlayer, *blackPlayer)

	*whitePlayer, *blackPlayer = "computer", ""
	cfg := config.NewConfig()
	fixed, err := applyPlayerFlags(cfg)
	if err != nil {
		t.Fatalf("applyPlayerFlags() error = %v", err)
	}
	if fixed != [2]bool{false, true} {
		t.Errorf("fixed = %v, want [false true]", fixed)
	}
	if cfg.White != config.Computer {
		t.Errorf("cfg.White = %v, want Computer", cfg.White)
	}

	*blackPlayer = "nobody"
	if _, err := applyPlayerFlags(config.NewConfig()); err == nil {
		t.Error("applyPlayerFlags() with bad player: expected error")
	}
}

func TestApplyFlags(t *testing.T) {
	defer func(d, q bool, dir string) { *debug, *quiet, *saveDir = d, q, dir }(*debug, *quiet, *saveDir)

	*debug, *quiet, *saveDir = true, false, "/tmp/saves"
	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.Verbosity != config.Verbose {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, config.Verbose)
	}
	if cfg.SaveDir != "/tmp/saves" {
		t.Errorf("SaveDir = %q", cfg.SaveDir)
	}

	*quiet = true
	applyFlags(cfg)
	if cfg.Verbosity != config.Quiet {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, config.Quiet)
	}
}
