package board

import (
	"fmt"
	"strings"
)

// Board holds the 64 cells and the occupancy set derived from them.
// Every mutation updates both together so that a square is occupied
// iff its cell is non-empty.
type Board struct {
	cells    [64]Cell
	occupied Bitboard
}

// backRank lists the piece types of a back rank from the a-file to the h-file.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewEmpty creates a board with no pieces.
func NewEmpty() *Board {
	return &Board{}
}

// New creates a board in the standard starting position.
func New() *Board {
	b := &Board{}
	b.setup()
	return b
}

// Reset restores the starting position in place.
func (b *Board) Reset() {
	*b = Board{}
	b.setup()
}

func (b *Board) setup() {
	for col := 0; col < 8; col++ {
		b.put(NewCell(backRank[col], Black, false), Square(col))
		b.put(NewCell(Pawn, Black, false), Square(8+col))
		b.put(NewCell(Pawn, White, false), Square(48+col))
		b.put(NewCell(backRank[col], White, false), Square(56+col))
	}
}

// put writes a cell and keeps occupancy in step with it.
func (b *Board) put(cell Cell, sq Square) {
	b.cells[sq] = cell
	if cell.IsEmpty() {
		b.occupied.Remove(sq)
	} else {
		b.occupied.Insert(sq)
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	n := *b
	return &n
}

// Equal reports whether both boards hold identical cells.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// AddPiece writes cell onto sq and marks it occupied, replacing whatever was there.
// Off-board squares are ignored; adding EmptyCell clears the square.
func (b *Board) AddPiece(cell Cell, sq Square) {
	if !sq.IsValid() {
		return
	}
	b.put(cell, sq)
}

// MovePieceUnchecked moves the piece on from to to without consulting the
// generated moves. The piece is marked as moved and anything on to is replaced.
// Moving from an empty or off-board square, or onto the same square, is a no-op.
func (b *Board) MovePieceUnchecked(from, to Square) {
	if !from.IsValid() || !to.IsValid() || from == to {
		return
	}
	cell := b.cells[from]
	if cell.IsEmpty() {
		return
	}
	b.put(EmptyCell, from)
	b.put(cell.WithMoved(), to)
}

// MovePiece applies a move only if to is among the generated destinations of
// the piece on from. A king moving onto its own unmoved rook castles: the king
// travels two squares toward the rook and the rook lands on the square it crossed.
func (b *Board) MovePiece(from, to Square) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidSquare, from, to)
	}
	cell := b.cells[from]
	if cell.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	if !b.LegalMoves(from).Contains(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalMove, from, to)
	}

	color, _ := cell.Color()
	if kind, _ := cell.Kind(); kind == King && b.cells[to].Is(Rook, color) {
		b.castle(from, to)
		return nil
	}

	b.MovePieceUnchecked(from, to)
	return nil
}

func (b *Board) castle(king, rook Square) {
	var kingTo, rookTo Square
	if rook > king {
		kingTo, rookTo = king+2, king+1
	} else {
		kingTo, rookTo = king-2, king-1
	}
	b.MovePieceUnchecked(king, kingTo)
	b.MovePieceUnchecked(rook, rookTo)
}

// At returns the cell on sq, or EmptyCell for an off-board square.
func (b *Board) At(sq Square) Cell {
	if !sq.IsValid() {
		return EmptyCell
	}
	return b.cells[sq]
}

// AtPosition returns the cell at the given column and row, or EmptyCell if either is off the board.
func (b *Board) AtPosition(col, row uint8) Cell {
	return b.At(SquareAt(col, row))
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return !b.occupied.Contains(sq)
}

// Occupancy returns the set of occupied squares.
func (b *Board) Occupancy() Bitboard {
	return b.occupied
}

// Placement pairs an occupied square with its cell.
type Placement struct {
	Square Square
	Cell   Cell
}

// Pieces returns the occupied squares and their cells in ascending square order.
func (b *Board) Pieces() []Placement {
	pieces := make([]Placement, 0, b.occupied.PopCount())
	for sq := range b.occupied.All() {
		pieces = append(pieces, Placement{Square: sq, Cell: b.cells[sq]})
	}
	return pieces
}

// Consistent reports whether the occupancy set matches the non-empty cells exactly.
func (b *Board) Consistent() bool {
	var occ Bitboard
	for sq := Square(0); sq < NoSquare; sq++ {
		if !b.cells[sq].IsEmpty() {
			occ.Insert(sq)
		}
	}
	return occ == b.occupied
}

// String returns a visual representation of the board, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d  ", 8-row)
		for col := 0; col < 8; col++ {
			cell := b.cells[row*8+col]
			if cell.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(cell.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
