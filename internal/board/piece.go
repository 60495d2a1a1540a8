package board

import (
	"encoding/json"
	"fmt"
)

// Color represents the color of a piece.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the kind of a chess piece.
// The zero value is reserved so that an empty Cell has no kind.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the piece type name.
func (pt PieceType) String() string {
	if pt > King {
		return "None"
	}
	return pieceTypeNames[pt]
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	if pt > King {
		return ' '
	}
	return " pnbrqk"[pt]
}

// ParsePieceType parses a piece type name as produced by String.
func ParsePieceType(s string) (PieceType, bool) {
	for pt := Pawn; pt <= King; pt++ {
		if pieceTypeNames[pt] == s {
			return pt, true
		}
	}
	return NoPieceType, false
}

// Cell is the state of one square, packed into a byte:
// bits 0-2 piece type (0 = empty), bit 3 black, bit 4 has moved.
type Cell uint8

const (
	cellKindMask  Cell = 0b00000111
	cellBlackFlag Cell = 0b00001000
	cellMovedFlag Cell = 0b00010000
)

// EmptyCell is the state of a square without a piece.
const EmptyCell Cell = 0

// NewCell creates a Cell holding a piece. An invalid piece type yields EmptyCell.
func NewCell(pt PieceType, c Color, moved bool) Cell {
	if pt == NoPieceType || pt > King {
		return EmptyCell
	}
	cell := Cell(pt)
	if c == Black {
		cell |= cellBlackFlag
	}
	if moved {
		cell |= cellMovedFlag
	}
	return cell
}

// IsEmpty returns true if the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c&cellKindMask == 0
}

// Kind returns the piece type, or false for an empty cell.
func (c Cell) Kind() (PieceType, bool) {
	if c.IsEmpty() {
		return NoPieceType, false
	}
	return PieceType(c & cellKindMask), true
}

// Color returns the piece color, or false for an empty cell.
func (c Cell) Color() (Color, bool) {
	if c.IsEmpty() {
		return White, false
	}
	if c&cellBlackFlag != 0 {
		return Black, true
	}
	return White, true
}

// HasMoved reports whether the piece has moved, or false for ok on an empty cell.
func (c Cell) HasMoved() (moved, ok bool) {
	if c.IsEmpty() {
		return false, false
	}
	return c&cellMovedFlag != 0, true
}

// Is returns true if the cell holds a piece of the given type and color.
func (c Cell) Is(pt PieceType, col Color) bool {
	kind, ok := c.Kind()
	if !ok || kind != pt {
		return false
	}
	color, _ := c.Color()
	return color == col
}

// WithMoved returns the cell with its has-moved flag set. Empty cells are unchanged.
func (c Cell) WithMoved() Cell {
	if c.IsEmpty() {
		return c
	}
	return c | cellMovedFlag
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black, a space when empty.
func (c Cell) String() string {
	kind, ok := c.Kind()
	if !ok {
		return " "
	}
	ch := kind.Char()
	if color, _ := c.Color(); color == White {
		ch -= 'a' - 'A'
	}
	return string(ch)
}

// CellFromChar converts a FEN character to an unmoved piece.
func CellFromChar(ch byte) Cell {
	col := White
	if ch >= 'a' && ch <= 'z' {
		col = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return NewCell(Pawn, col, false)
	case 'N':
		return NewCell(Knight, col, false)
	case 'B':
		return NewCell(Bishop, col, false)
	case 'R':
		return NewCell(Rook, col, false)
	case 'Q':
		return NewCell(Queen, col, false)
	case 'K':
		return NewCell(King, col, false)
	default:
		return EmptyCell
	}
}

// pieceRecord is the serialized form of an occupied cell.
type pieceRecord struct {
	Type     string `json:"type"`
	Color    string `json:"color"`
	HasMoved bool   `json:"has_moved"`
}

// MarshalJSON encodes an occupied cell as {type, color, has_moved}; empty cells encode as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	kind, ok := c.Kind()
	if !ok {
		return []byte("null"), nil
	}
	color, _ := c.Color()
	moved, _ := c.HasMoved()
	return json.Marshal(pieceRecord{
		Type:     kind.String(),
		Color:    color.String(),
		HasMoved: moved,
	})
}

// UnmarshalJSON decodes a piece record; null decodes to EmptyCell.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = EmptyCell
		return nil
	}
	var rec pieceRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	kind, ok := ParsePieceType(rec.Type)
	if !ok {
		return fmt.Errorf("board: unknown piece type %q", rec.Type)
	}
	var col Color
	switch rec.Color {
	case "White":
		col = White
	case "Black":
		col = Black
	default:
		return fmt.Errorf("board: unknown color %q", rec.Color)
	}
	*c = NewCell(kind, col, rec.HasMoved)
	return nil
}
