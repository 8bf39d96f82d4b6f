package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lgbarn/chess-go/internal/ai"
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
	chesserrors "github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/game"
	"github.com/lgbarn/chess-go/internal/render"
)

const helpText = `
Enter start and end coordinates to move a piece (for example c2c4)
or one of the following commands:

save   (save the state of the current game)
load   (load a previously saved game)
resign (admit defeat)
board  (redraw the board)
svg    (write the board as an SVG image)
help   (displays this message)
exit   (terminate the game, losing any unsaved states)
`

// session runs games against one input and output stream until the user
// exits or declines to play again.
type session struct {
	cfg   *config.Config
	in    *prompter
	store *game.Store
	rng   *rand.Rand

	// Sides whose player kind is taken from cfg rather than asked for.
	fixed [2]bool

	game    *game.Game
	players [2]player

	done     bool // exit requested
	over     bool // current game ended by resignation
	skipDraw bool // suppress the next board redraw
}

func newSession(cfg *config.Config, in io.Reader, fixed [2]bool) *session {
	src := cfg.Seed
	if src == 0 {
		src = time.Now().UnixNano()
	}
	return &session{
		cfg:   cfg,
		in:    newPrompter(in, cfg.OutputFile),
		store: game.NewStore(cfg.SaveDir),
		rng:   rand.New(rand.NewSource(src)), //nolint:gosec // G404: move choice is not security sensitive
		fixed: fixed,
	}
}

// run plays games until the user is done. Running out of input ends the
// session without error.
func (s *session) run() error {
	err := s.loop()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *session) loop() error {
	for {
		s.game = game.New()
		s.over = false
		if err := s.choosePlayers(); err != nil {
			return err
		}
		s.showHelp()

		if err := s.playGame(); err != nil {
			return err
		}
		if s.done {
			return nil
		}

		again, err := s.in.confirm("\nPlay again?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// choosePlayers sets up both sides, asking about any side not fixed by flags.
func (s *session) choosePlayers() error {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		kind := s.cfg.Player(side)
		if !s.fixed[side] {
			kind = config.Human
			yes, err := s.in.confirm(fmt.Sprintf("Do you want %s to be human?", side))
			if err != nil {
				return err
			}
			if !yes {
				kind = config.Computer
			}
		}
		s.players[side] = s.newPlayer(side, kind)
		s.cfg.Logf(config.Normal, "%s is played by %s", side, kind)
	}
	return nil
}

func (s *session) newPlayer(side chess.Side, kind config.PlayerKind) player {
	if kind == config.Human {
		return &human{side: side, in: s.in}
	}
	aiCfg := ai.Config{Rand: s.rng}
	if s.cfg.Verbosity >= config.Verbose {
		aiCfg.Trace = s.cfg.LogFile
	}
	return &computer{scorer: ai.NewScorer(side, aiCfg), out: s.cfg.OutputFile}
}

// playGame runs turns until the game ends or the user exits.
func (s *session) playGame() error {
	for {
		s.drawBoard()

		status := s.game.Status()
		switch status {
		case game.Check:
			s.in.say("Check!")
		case game.Checkmate:
			s.in.say("Checkmate! %s wins!", s.game.ToMove.Opposite())
		case game.Stalemate:
			s.in.say("Stalemate!")
		case game.Draw:
			s.in.say("Draw!")
		}
		if status.Over() {
			s.cfg.Logf(config.Normal, "game over on turn %d: %s", s.game.Turn, status)
			return nil
		}

		if err := s.turn(); err != nil {
			return err
		}
		if s.done || s.over {
			return nil
		}
	}
}

// turn reads and handles one move or command from the side to move.
func (s *session) turn() error {
	input, err := s.players[s.game.ToMove].Input(s.game)
	if err != nil {
		return err
	}

	switch input {
	case "load":
		return s.load()
	case "save":
		return s.save()
	case "exit", "quit":
		s.done = true
	case "resign":
		s.over = true
		s.in.say("%s wins!", s.game.ToMove.Opposite())
	case "help", "h":
		s.showHelp()
	case "board":
	case "svg":
		s.writeSVG()
		s.skipDraw = true
	default:
		if !chess.IsMoveText(input) {
			s.in.say("Invalid move or command. Try again.")
			s.skipDraw = true
			return nil
		}
		return s.move(input)
	}
	return nil
}

// move plays a move for the side to move, then handles promotion and
// passes the turn. A rejected move is reported and the same side retries.
func (s *session) move(text string) error {
	m, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	if err := s.game.Play(m); err != nil {
		var moveErr *chesserrors.MoveError
		if !errors.As(err, &moveErr) {
			return err
		}
		s.in.say("%v. Try again.", moveErr.Err)
		s.cfg.Logf(config.Verbose, "rejected: %v", err)
		s.skipDraw = true
		return nil
	}

	if pawn := s.game.PendingPromotion(); pawn != nil {
		s.drawBoard()
		kind, err := s.players[s.game.ToMove].Promote(pawn)
		if err != nil {
			return err
		}
		if err := s.game.Promote(pawn.Pos, kind); err != nil {
			return err
		}
		s.cfg.Logf(config.Normal, "%s pawn on %v promoted to %s", s.game.ToMove, pawn.Pos, kind)
	}

	s.game.EndTurn()
	if s.cfg.SVGFile != "" {
		s.writeSVG()
	}
	return nil
}

// save asks for a name and stores the game, confirming any overwrite.
func (s *session) save() error {
	var name string
	for {
		var err error
		if name, err = s.in.ask("Enter name of game to save: "); err != nil {
			return err
		}
		if game.ValidName(name) {
			break
		}
		s.in.say("Invalid filename. Use only letters, numbers, and underscore.")
	}

	if s.store.Exists(name) {
		yes, err := s.in.confirm(fmt.Sprintf("Overwrite save game '%s'?", name))
		if err != nil {
			return err
		}
		if !yes {
			s.in.say("Game not saved.")
			return nil
		}
	}

	if err := s.store.Save(name, s.game); err != nil {
		s.in.say("Could not save game %s: %v", name, err)
		return nil
	}
	s.in.say("Saved game %s.", name)
	s.cfg.Logf(config.Normal, "saved %s to %s", name, s.store.Dir)
	return nil
}

// load lists saved games and replaces the current game with the chosen one.
// The current players are kept.
func (s *session) load() error {
	names, err := s.store.List()
	if err != nil {
		s.in.say("Could not list saved games: %v", err)
		return nil
	}
	s.in.say("Saved games:")
	for _, name := range names {
		s.in.say("%s", name)
	}

	name, err := s.in.ask("Enter name of game to load: ")
	if err != nil {
		return err
	}
	g, err := s.store.Load(name)
	switch {
	case errors.Is(err, chesserrors.ErrGameNotFound), errors.Is(err, chesserrors.ErrInvalidName):
		s.in.say("Game %s not found.", name)
	case err != nil:
		s.in.say("Could not load game %s: %v", name, err)
	default:
		s.game = g
		s.cfg.Logf(config.Normal, "loaded %s: %s to move, turn %d", name, g.ToMove, g.Turn)
	}
	return nil
}

func (s *session) showHelp() {
	fmt.Fprint(s.cfg.OutputFile, helpText)
}

func (s *session) drawBoard() {
	if s.skipDraw {
		s.skipDraw = false
		return
	}
	if err := render.Text(s.cfg.OutputFile, s.game.Board); err != nil {
		s.cfg.Logf(config.Normal, "drawing board: %v", err)
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if line := render.Captured(s.game.Board, side); line != "" {
			s.in.say("%s", line)
		}
	}
}

func (s *session) writeSVG() {
	path := s.cfg.SVGFile
	if path == "" {
		path = "board.svg"
	}
	if err := render.WriteSVGFile(path, s.game.Board); err != nil {
		s.in.say("Could not write %s: %v", path, err)
		return
	}
	s.cfg.Logf(config.Normal, "wrote %s", path)
}
