package board

import (
	"encoding/json"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is the occupancy set: bit i is set iff square i is in the set.
// Square arguments are taken modulo 64, so no operation can panic.
type Bitboard uint64

// Row masks
const (
	Row0 Bitboard = 0x00000000000000FF
	Row1 Bitboard = 0x000000000000FF00
	Row6 Bitboard = 0x00FF000000000000
	Row7 Bitboard = 0xFF00000000000000
)

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	// StartOccupancy covers both populated bands of the starting position.
	StartOccupancy Bitboard = Row0 | Row1 | Row6 | Row7
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << (sq % 64)
}

// Contains returns true if the square is in the set.
func (b Bitboard) Contains(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// Insert adds the square to the set.
func (b *Bitboard) Insert(sq Square) {
	*b |= SquareBB(sq)
}

// Remove clears the square from the set.
func (b *Bitboard) Remove(sq Square) {
	*b &^= SquareBB(sq)
}

// Union returns the squares present in either set.
func (b Bitboard) Union(other Bitboard) Bitboard {
	return b | other
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// SquareIter walks the squares of a bitboard in ascending order.
type SquareIter struct {
	remaining Bitboard
}

// Iter returns an iterator over the set squares, lowest first.
// The bitboard is copied, so calling Iter again restarts the walk.
func (b Bitboard) Iter() SquareIter {
	return SquareIter{remaining: b}
}

// Next returns the next square, or false once the iterator is exhausted.
func (it *SquareIter) Next() (Square, bool) {
	if it.remaining == 0 {
		return NoSquare, false
	}
	return it.remaining.PopLSB(), true
}

// Len returns the number of squares not yet returned by Next.
func (it *SquareIter) Len() int {
	return it.remaining.PopCount()
}

// All returns the set squares as a range-over-func sequence.
func (b Bitboard) All() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for rest := b; rest != 0; {
			if !yield(rest.PopLSB()) {
				return
			}
		}
	}
}

// ForEach calls the function for each set square.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// MarshalJSON encodes the set as an ascending list of square indices.
func (b Bitboard) MarshalJSON() ([]byte, error) {
	indices := make([]int, 0, b.PopCount())
	b.ForEach(func(sq Square) {
		indices = append(indices, int(sq))
	})
	return json.Marshal(indices)
}

// UnmarshalJSON decodes a list of square indices.
func (b *Bitboard) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	var out Bitboard
	for _, i := range indices {
		if i < 0 || i > 63 {
			return fmt.Errorf("%w: %d", ErrInvalidSquare, i)
		}
		out.Insert(Square(i))
	}
	*b = out
	return nil
}

// String returns a visual representation of the bitboard, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d ", 8-row)
		for col := 0; col < 8; col++ {
			if b.Contains(Square(row*8 + col)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
