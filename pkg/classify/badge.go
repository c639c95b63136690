package classify

// Badge is the quality grade assigned to a played move.
type Badge string

const (
	Brilliant  Badge = "Brilliant"
	Best       Badge = "Best"
	Great      Badge = "Great"
	Good       Badge = "Good"
	Inaccuracy Badge = "Inaccuracy"
	Mistake    Badge = "Mistake"
	Blunder    Badge = "Blunder"
)

// IsSound reports whether b counts toward accuracy: the four badges a sound
// player is expected to earn.
func (b Badge) IsSound() bool {
	switch b {
	case Brilliant, Best, Great, Good:
		return true
	default:
		return false
	}
}
