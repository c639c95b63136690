package classify

import (
	"context"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/seekerror/logw"
)

// Classifier accumulates a session's worth of classification Records and
// their aggregate statistics. Not thread-safe; callers sharing a Classifier
// across goroutines must guard it externally, same as Board.
type Classifier struct {
	history []Record
}

// NewClassifier returns an empty Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify grades m played from before, appends the Record to History, and
// returns it.
func (c *Classifier) Classify(ctx context.Context, before *board.Board, m board.Move) Record {
	r := Classify(before, m)
	c.history = append(c.history, r)
	logw.Infof(ctx, "classified %v", r)
	return r
}

// History returns every Record classified so far, oldest first.
func (c *Classifier) History() []Record {
	return append([]Record(nil), c.history...)
}

// Counts returns the number of Records with each Badge.
func (c *Classifier) Counts() map[Badge]int {
	return Counts(c.history)
}

// Accuracy returns 100*(Brilliant+Best+Great+Good)/total, or 0 if no moves
// have been classified yet.
func (c *Classifier) Accuracy() float64 {
	return Accuracy(c.history)
}

// Counts tallies history by Badge. Shared by Classifier and the analysis
// report writer so both agree on one definition.
func Counts(history []Record) map[Badge]int {
	counts := make(map[Badge]int, 7)
	for _, r := range history {
		counts[r.Badge]++
	}
	return counts
}

// Accuracy returns 100*(Brilliant+Best+Great+Good)/total over history, or 0
// if history is empty.
func Accuracy(history []Record) float64 {
	if len(history) == 0 {
		return 0
	}
	var sound int
	for _, r := range history {
		if r.Badge.IsSound() {
			sound++
		}
	}
	return 100 * float64(sound) / float64(len(history))
}
