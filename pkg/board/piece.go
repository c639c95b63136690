package board

// Kind identifies a piece's geometry, independent of color. 3 bits.
type Kind uint8

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// ParseKind parses a promotion letter, e.g. 'q' or 'N'.
func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	default:
		return Empty, false
	}
}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "."
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Value is a piece's material worth in centipawns.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

// Piece is a tagged value: an empty square carries Kind == Empty and its
// Color must never be consulted by callers -- it is not meaningful.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the sentinel occupying every empty square.
var NoPiece = Piece{Kind: Empty}

// IsEmpty reports whether the square this piece came from is unoccupied.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color == White {
		switch p.Kind {
		case Pawn:
			return "P"
		case Knight:
			return "N"
		case Bishop:
			return "B"
		case Rook:
			return "R"
		case Queen:
			return "Q"
		case King:
			return "K"
		}
	}
	return p.Kind.String()
}
