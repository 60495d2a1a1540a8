package board

// stepFunc moves a square by a fixed magnitude, returning NoSquare on an edge.
type stepFunc func(Square, uint8) Square

var (
	forward  stepFunc = Square.Forward
	backward stepFunc = Square.Backward
)

// ray is one direction a piece travels in: a magnitude and a sense.
type ray struct {
	n    uint8
	step stepFunc
}

var (
	diagonalRays = [4]ray{{7, forward}, {9, forward}, {7, backward}, {9, backward}}
	straightRays = [4]ray{{1, forward}, {8, forward}, {1, backward}, {8, backward}}
	knightRays   = [8]ray{
		{6, forward}, {10, forward}, {15, forward}, {17, forward},
		{6, backward}, {10, backward}, {15, backward}, {17, backward},
	}
	kingRays = [8]ray{
		{1, forward}, {7, forward}, {8, forward}, {9, forward},
		{1, backward}, {7, backward}, {8, backward}, {9, backward},
	}
)

// castlePath describes one castling option: the king and rook home squares
// and the squares between them that must be empty.
type castlePath struct {
	color   Color
	king    Square
	rook    Square
	between Bitboard
}

var castlePaths = [4]castlePath{
	{White, E1, H1, SquareBB(F1) | SquareBB(G1)},
	{White, E1, A1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1)},
	{Black, E8, H8, SquareBB(F8) | SquareBB(G8)},
	{Black, E8, A8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8)},
}

// LegalMoves returns the destination squares of the piece on sq under movement
// rules. Check and pins are not considered. An empty square has no moves.
func (b *Board) LegalMoves(sq Square) Bitboard {
	kind, ok := b.At(sq).Kind()
	if !ok {
		return Empty
	}

	switch kind {
	case Pawn:
		return b.PawnMoves(sq)
	case Knight:
		return b.KnightMoves(sq)
	case Bishop:
		return b.BishopMoves(sq)
	case Rook:
		return b.RookMoves(sq)
	case Queen:
		return b.QueenMoves(sq)
	case King:
		return b.KingMoves(sq)
	}
	return Empty
}

// PawnMoves generates pawn destinations: the single push onto an empty square,
// the double push while the pawn is unmoved, and diagonal captures.
// White pawns advance toward row 0, black pawns toward row 7.
func (b *Board) PawnMoves(sq Square) Bitboard {
	cell := b.At(sq)
	us, ok := cell.Color()
	if !ok {
		return Empty
	}

	advance := backward
	if us == Black {
		advance = forward
	}

	var moves Bitboard

	if moved, _ := cell.HasMoved(); !moved {
		if to := advance(sq, 16); to != NoSquare {
			moves.Insert(to)
		}
	}

	if to := advance(sq, 8); to != NoSquare && b.IsEmpty(to) {
		moves.Insert(to)
	}

	// Diagonals are capture-only
	for _, n := range [2]uint8{7, 9} {
		if to := advance(sq, n); to != NoSquare && b.isEnemy(to, us) {
			moves.Insert(to)
		}
	}

	return moves
}

// KnightMoves generates the eight knight jumps that stay on the board and do
// not land on a friendly piece.
func (b *Board) KnightMoves(sq Square) Bitboard {
	us, ok := b.At(sq).Color()
	if !ok {
		return Empty
	}
	return b.leap(sq, us, knightRays[:])
}

// BishopMoves generates the diagonal rays from sq.
func (b *Board) BishopMoves(sq Square) Bitboard {
	us, ok := b.At(sq).Color()
	if !ok {
		return Empty
	}
	return b.slide(sq, us, diagonalRays[:])
}

// RookMoves generates the horizontal and vertical rays from sq.
func (b *Board) RookMoves(sq Square) Bitboard {
	us, ok := b.At(sq).Color()
	if !ok {
		return Empty
	}
	return b.slide(sq, us, straightRays[:])
}

// QueenMoves is the union of the bishop and rook rays from sq.
func (b *Board) QueenMoves(sq Square) Bitboard {
	us, ok := b.At(sq).Color()
	if !ok {
		return Empty
	}
	return b.slide(sq, us, diagonalRays[:]).Union(b.slide(sq, us, straightRays[:]))
}

// KingMoves generates the adjacent squares not held by a friendly piece, plus
// castling. Castling is encoded as the king moving onto its own rook's square.
func (b *Board) KingMoves(sq Square) Bitboard {
	cell := b.At(sq)
	us, ok := cell.Color()
	if !ok {
		return Empty
	}

	moves := b.leap(sq, us, kingRays[:])

	if moved, _ := cell.HasMoved(); !moved {
		moves |= b.castleMoves(sq, us)
	}

	return moves
}

// castleMoves returns the rook squares the unmoved king on sq may castle with.
func (b *Board) castleMoves(sq Square, us Color) Bitboard {
	var moves Bitboard
	for _, cp := range castlePaths {
		if cp.color != us || cp.king != sq {
			continue
		}
		rook := b.cells[cp.rook]
		if !rook.Is(Rook, us) {
			continue
		}
		if moved, _ := rook.HasMoved(); moved {
			continue
		}
		if cp.between&b.occupied != 0 {
			continue
		}
		moves.Insert(cp.rook)
	}
	return moves
}

// slide walks each ray until the edge or the first occupied square, which is
// included only when it holds an enemy piece.
func (b *Board) slide(from Square, us Color, rays []ray) Bitboard {
	var moves Bitboard
	for _, r := range rays {
		for to := r.step(from, r.n); to != NoSquare; to = r.step(to, r.n) {
			if b.IsEmpty(to) {
				moves.Insert(to)
				continue
			}
			if b.isEnemy(to, us) {
				moves.Insert(to)
			}
			break
		}
	}
	return moves
}

// leap takes a single step along each ray, skipping friendly-occupied squares.
func (b *Board) leap(from Square, us Color, rays []ray) Bitboard {
	var moves Bitboard
	for _, r := range rays {
		to := r.step(from, r.n)
		if to == NoSquare || b.isFriendly(to, us) {
			continue
		}
		moves.Insert(to)
	}
	return moves
}

func (b *Board) isEnemy(sq Square, us Color) bool {
	c, ok := b.At(sq).Color()
	return ok && c != us
}

func (b *Board) isFriendly(sq Square, us Color) bool {
	c, ok := b.At(sq).Color()
	return ok && c == us
}
