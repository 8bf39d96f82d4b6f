// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/errors"
)

var (
	// Players
	whitePlayer = flag.String("white", "", "Who plays White: human or computer (default: ask)")
	blackPlayer = flag.String("black", "", "Who plays Black: human or computer (default: ask)")
	seed        = flag.Int64("seed", 0, "Seed for computer move selection (0 = random)")

	// Files
	saveDir = flag.String("savedir", "", "Directory for saved games (default: XDG data dir)")
	svgFile = flag.String("svg", "", "Write an SVG image of the board to this file after every move")
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")

	// Verbosity
	quiet   = flag.Bool("q", false, "Quiet mode: no diagnostics")
	debug   = flag.Bool("debug", false, "Trace computer move scoring")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the config. Players left unset
// are asked for at the start of each game.
func applyFlags(cfg *config.Config) {
	if *saveDir != "" {
		cfg.SaveDir = *saveDir
	}
	cfg.SVGFile = *svgFile
	cfg.Seed = *seed

	if *debug {
		cfg.Verbosity = config.Verbose
	}
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
}

// applyPlayerFlags sets the players given on the command line and reports
// which sides were fixed. Unfixed sides are asked for at the start of each game.
func applyPlayerFlags(cfg *config.Config) (fixed [2]bool, err error) {
	for side, v := range map[chess.Side]string{chess.White: *whitePlayer, chess.Black: *blackPlayer} {
		if v == "" {
			continue
		}
		k, err := parsePlayerKind(v)
		if err != nil {
			return fixed, err
		}
		if side == chess.White {
			cfg.White = k
		} else {
			cfg.Black = k
		}
		fixed[side] = true
	}
	return fixed, nil
}

// parsePlayerKind accepts "human" or "computer" (or their first letter).
func parsePlayerKind(s string) (config.PlayerKind, error) {
	switch strings.ToLower(s) {
	case "human", "h":
		return config.Human, nil
	case "computer", "c", "ai":
		return config.Computer, nil
	}
	return config.Human, fmt.Errorf("player %q: want human or computer: %w", s, errors.ErrInvalidConfig)
}
