package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/herohde/chesspal/pkg/classify"
)

// ExportAnalysis writes the session's classification history to w as plain
// text: a header, one numbered block per move, and a trailing statistics
// block. Any write error is returned verbatim.
func (f *Facade) ExportAnalysis(w io.Writer, now time.Time) error {
	f.mu.Lock()
	history := f.classifier.History()
	f.mu.Unlock()

	if _, err := fmt.Fprintf(w, "Chess Analysis Report - %v\n", now.Format("2006-01-02 15:04:05")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total moves: %v\n\n", len(history)); err != nil {
		return err
	}

	for i, r := range history {
		if _, err := fmt.Fprintf(w, "%v. %v - %v\n", i+1, r.Move, r.Badge); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   %v\n", r.Description); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Score: %v -> %v (%+d), Rank: #%v\n", r.ScoreBefore, r.ScoreAfter, r.ScoreDiff, r.Rank); err != nil {
			return err
		}
	}

	return writeStatistics(w, history)
}

func writeStatistics(w io.Writer, history []classify.Record) error {
	if _, err := fmt.Fprintf(w, "\nStatistics:\n"); err != nil {
		return err
	}

	badges := []classify.Badge{classify.Brilliant, classify.Best, classify.Great, classify.Good, classify.Inaccuracy, classify.Mistake, classify.Blunder}
	counts := classify.Counts(history)
	for _, b := range badges {
		if _, err := fmt.Fprintf(w, "%v: %v\n", b, counts[b]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Accuracy: %.1f%%\n", classify.Accuracy(history))
	return err
}
