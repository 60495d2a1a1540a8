package board

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Snapshot is the sparse form of a board: the occupied squares in ascending
// order. It serializes as an object keyed by square index; empty squares are omitted.
type Snapshot []Placement

// Snapshot returns the sparse form of the board.
func (b *Board) Snapshot() Snapshot {
	return Snapshot(b.Pieces())
}

// FromSnapshot rebuilds a board by placing every piece of the snapshot.
func FromSnapshot(s Snapshot) *Board {
	b := NewEmpty()
	for _, p := range s {
		b.AddPiece(p.Cell, p.Square)
	}
	return b
}

// Occupancy returns the squares covered by the snapshot.
func (s Snapshot) Occupancy() Bitboard {
	var occ Bitboard
	for _, p := range s {
		if !p.Cell.IsEmpty() {
			occ.Insert(p.Square)
		}
	}
	return occ
}

// MarshalJSON encodes the snapshot as {"<index>": {type, color, has_moved}, ...}.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	m := make(map[Square]Cell, len(s))
	for _, p := range s {
		if p.Cell.IsEmpty() {
			continue
		}
		m[p.Square] = p.Cell
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the sparse object form, restoring ascending square order.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var m map[Square]Cell
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	squares := maps.Keys(m)
	slices.Sort(squares)

	out := make(Snapshot, 0, len(squares))
	for _, sq := range squares {
		if !sq.IsValid() {
			return fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
		}
		if m[sq].IsEmpty() {
			continue
		}
		out = append(out, Placement{Square: sq, Cell: m[sq]})
	}
	*s = out
	return nil
}
