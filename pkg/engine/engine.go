// Package engine provides Facade, the single entry point embedding
// applications drive: board setup and inspection, move application, best-move
// search, and post-move classification.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/herohde/chesspal/pkg/classify"
	"github.com/herohde/chesspal/pkg/eval"
	"github.com/herohde/chesspal/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// ErrNoLegalMove indicates the side to move has no legal move: the position
// is checkmate or stalemate. BestMove still returns a static evaluation.
var ErrNoLegalMove = errors.New("no legal move")

// Facade encapsulates the board, search, and classifier behind one
// mutex-guarded entry point. The mutex serializes calls arriving from an
// embedding driver goroutine; it is not a concurrency feature of search
// itself, which is single-threaded and synchronous (see DESIGN.md).
type Facade struct {
	mu sync.Mutex

	b          *board.Board
	cfg        Config
	classifier *classify.Classifier
}

// New returns a Facade set up in the standard initial position with
// DefaultConfig, adjusted by opts.
func New(ctx context.Context, opts ...Option) (*Facade, error) {
	f := &Facade{
		b:          board.NewBoard(),
		cfg:        DefaultConfig(),
		classifier: classify.NewClassifier(),
	}
	if err := f.Configure(opts...); err != nil {
		return nil, err
	}

	logw.Infof(ctx, "initialized chesspal %v, config=%v", version, f.cfg)
	return f, nil
}

// Version returns the engine's semantic version.
func Version() string {
	return fmt.Sprintf("%v", version)
}

// Reset sets up the standard initial position and clears classification
// history. Configuration is untouched.
func (f *Facade) Reset(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.b = board.NewBoard()
	f.classifier = classify.NewClassifier()
	logw.Infof(ctx, "reset board")
}

// Config returns the current configuration.
func (f *Facade) Config() Config {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cfg
}

// Configure applies opts atomically: if any rejects, the configuration is
// left exactly as it was.
func (f *Facade) Configure(opts ...Option) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := f.cfg
	for _, opt := range opts {
		if err := opt(&next); err != nil {
			return err
		}
	}
	f.cfg = next
	return nil
}

// GetPiece returns the piece on sq, or board.NoPiece for an out-of-range
// square.
func (f *Facade) GetPiece(sq board.Square) board.Piece {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.b.GetPiece(sq)
}

// SetPiece places p on sq. A no-op for an out-of-range square.
func (f *Facade) SetPiece(sq board.Square, p board.Piece) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.b.SetPiece(sq, p)
	f.b.SyncKingSquares()
}

// CurrentPlayer returns the side to move.
func (f *Facade) CurrentPlayer() board.Color {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.b.CurrentPlayer()
}

// LegalMoves returns every legal move in the current position.
func (f *Facade) LegalMoves() []board.Move {
	f.mu.Lock()
	defer f.mu.Unlock()

	return board.GenerateLegalMoves(f.b)
}

// ParseMove parses a move string, per board.ParseMove. The result is
// board.InvalidMove on a malformed string; callers distinguish by
// Move.IsValid.
func (f *Facade) ParseMove(s string) board.Move {
	m, _ := board.ParseMove(s)
	return m
}

// ApplyMove applies m if it is in the current legal-move set. Returns false
// with the board unchanged if m is invalid or illegal.
func (f *Facade) ApplyMove(ctx context.Context, m board.Move) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	legal, ok := matchLegalMove(f.b, m)
	if !ok {
		logw.Infof(ctx, "rejected illegal move %v", m)
		return false
	}

	f.b.ApplyMove(legal)
	logw.Infof(ctx, "applied move %v", legal)
	return true
}

// IsInCheck reports whether c's king is attacked in the current position.
func (f *Facade) IsInCheck(c board.Color) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return board.IsInCheck(f.b, c)
}

// IsGameOver reports whether the side to move has no legal move.
func (f *Facade) IsGameOver() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !board.HasLegalMove(f.b)
}

// IsCheckmate reports whether the side to move has no legal move and is in
// check.
func (f *Facade) IsCheckmate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !board.HasLegalMove(f.b) && board.IsInCheck(f.b, f.b.CurrentPlayer())
}

// IsStalemate reports whether the side to move has no legal move and is not
// in check.
func (f *Facade) IsStalemate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !board.HasLegalMove(f.b) && !board.IsInCheck(f.b, f.b.CurrentPlayer())
}

// BestMove runs iterative-deepening search to the configured depth and time
// budget. If the side to move has no legal move, it returns ErrNoLegalMove
// alongside the static evaluation of the current position.
func (f *Facade) BestMove(ctx context.Context) (search.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !board.HasLegalMove(f.b) {
		return search.Result{Score: eval.Evaluate(f.b), BestMove: board.InvalidMove}, ErrNoLegalMove
	}

	opt := search.Options{
		MaxDepth:     f.cfg.MaxDepth,
		TraceEnabled: f.cfg.TreeTraceEnabled,
	}
	if f.cfg.TimeLimitEnabled {
		opt.TimeLimit = lang.Some(time.Duration(f.cfg.TimeLimitMs) * time.Millisecond)
	}

	res := search.Search(ctx, f.b, opt)
	logw.Infof(ctx, "best move %v, depth=%v, score=%v, nodes=%v", res.BestMove, res.Depth, res.Score, res.Nodes)
	return res, nil
}

// ClassifyUserMove grades m against the legal-move set of the current
// position, applies it, and records it in the analysis history if the
// classifier is enabled. Returns an error and leaves the board unchanged if
// m is not legal.
func (f *Facade) ClassifyUserMove(ctx context.Context, m board.Move) (classify.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	legal, ok := matchLegalMove(f.b, m)
	if !ok {
		return classify.Record{}, fmt.Errorf("illegal move: %v", m)
	}

	var rec classify.Record
	if f.cfg.ClassifierEnabled {
		rec = f.classifier.Classify(ctx, f.b, legal)
	} else {
		rec = classify.Classify(f.b, legal)
	}

	f.b.ApplyMove(legal)
	logw.Infof(ctx, "classified user move %v", rec)
	return rec, nil
}

// AnalysisHistory returns every classified move of the session, oldest
// first.
func (f *Facade) AnalysisHistory() []classify.Record {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.classifier.History()
}

func matchLegalMove(b *board.Board, m board.Move) (board.Move, bool) {
	if !m.IsValid() {
		return board.InvalidMove, false
	}
	for _, lm := range board.GenerateLegalMoves(b) {
		if lm.Equals(m) {
			return lm, true
		}
	}
	return board.InvalidMove, false
}
