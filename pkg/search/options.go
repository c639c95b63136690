package search

import (
	"fmt"
	"time"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/herohde/chesspal/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold the parameters of a single search call. The user may change
// these between searches.
type Options struct {
	// MaxDepth is the last iterative-deepening depth to run, inclusive.
	MaxDepth int
	// TimeLimit, if set, bounds wall-clock time spent searching.
	TimeLimit lang.Optional[time.Duration]
	// TraceEnabled turns on the per-node observability log. Never changes
	// the chosen move or score.
	TraceEnabled bool
	// Clock is the monotonic time source polled for the time budget.
	// Defaults to SystemClock when nil.
	Clock Clock
}

func (o Options) String() string {
	s := fmt.Sprintf("depth=%v", o.MaxDepth)
	if v, ok := o.TimeLimit.V(); ok {
		s += fmt.Sprintf(", time=%v", v)
	}
	if o.TraceEnabled {
		s += ", trace=on"
	}
	return s
}

// Result is the outcome of a full iterative-deepening search.
type Result struct {
	BestMove board.Move
	Score    eval.Score
	Depth    int // deepest depth whose root search produced a move, possibly cut short by the time budget
	Nodes    uint64
	Elapsed  time.Duration
	Trace    []TraceEntry
}
