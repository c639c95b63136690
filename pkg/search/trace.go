package search

import (
	"github.com/herohde/chesspal/pkg/board"
	"github.com/herohde/chesspal/pkg/eval"
)

// Tag classifies why a traced node terminated. The trace is an
// observability side channel: recording it must never change which move
// or score a search returns.
type Tag string

const (
	Leaf        Tag = "LEAF"
	Terminal    Tag = "TERMINAL"
	BetaCutoff  Tag = "BETA_CUTOFF"
	AlphaCutoff Tag = "ALPHA_CUTOFF"
	TimeCutoff  Tag = "TIME_CUTOFF"
)

// TraceEntry is one logged node, emitted only when Options.TraceEnabled.
type TraceEntry struct {
	Depth       int
	PlyFromRoot int
	Maximizing  bool
	Move        board.Move
	Score       eval.Score
	Alpha       eval.Score
	Beta        eval.Score
	Tag         Tag
}
