// Package board implements the chess board state and per-piece move generation.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Row-major from Black's back rank: A8=0, H8=7, A1=56, H1=63.
type Square uint8

// Square constants for the squares the board refers to by name.
const (
	A8 Square = 0
	B8 Square = 1
	C8 Square = 2
	D8 Square = 3
	E8 Square = 4
	F8 Square = 5
	G8 Square = 6
	H8 Square = 7
	A1 Square = 56
	B1 Square = 57
	C1 Square = 58
	D1 Square = 59
	E1 Square = 60
	F1 Square = 61
	G1 Square = 62
	H1 Square = 63

	NoSquare Square = 64
)

// Col returns the column of the square (0-7, where 0=a, 7=h).
func (sq Square) Col() int {
	return int(sq) % 8
}

// Row returns the row of the square (0-7, where 0 is rank 8).
func (sq Square) Row() int {
	return int(sq) / 8
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '8'-sq.Row())
}

// SquareAt converts a column and row to a square, or NoSquare if either is off the board.
func SquareAt(col, row uint8) Square {
	if col >= 8 || row >= 8 {
		return NoSquare
	}
	return Square(row*8 + col)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	col := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if col < 0 || col > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return Square((7-rank)*8 + col), nil
}

// Mirror returns the square mirrored vertically (a8 <-> a1).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// drift is the column change a forward step of n squares must produce.
// Steps with n%8 in {3,4,5} never occur on a chess board.
func drift(n uint8) int {
	switch n % 8 {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 2
	case 6:
		return -2
	case 7:
		return -1
	}
	return 8
}

// Forward returns the square n indices above sq, or NoSquare if the step
// leaves the board or wraps around the left/right edge.
func (sq Square) Forward(n uint8) Square {
	if !sq.IsValid() || int(sq)+int(n) > 63 {
		return NoSquare
	}
	to := sq + Square(n)
	if to.Col()-sq.Col() != drift(n) {
		return NoSquare
	}
	return to
}

// Backward returns the square n indices below sq, or NoSquare if the step
// leaves the board or wraps around the left/right edge.
func (sq Square) Backward(n uint8) Square {
	if !sq.IsValid() || n > uint8(sq) {
		return NoSquare
	}
	to := sq - Square(n)
	if sq.Col()-to.Col() != drift(n) {
		return NoSquare
	}
	return to
}
