package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenDefaults fills in the optional trailing FEN fields.
var fenDefaults = [6]string{"", "w", "-", "-", "0", "1"}

// ParseFEN builds a board from a FEN string. Only the piece placement and
// castling fields affect the result: pieces off their starting squares, and
// kings and rooks without a matching castling right, are marked as moved.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 || len(parts) > 6 {
		return nil, fmt.Errorf("%w: need 1 to 6 fields, got %d", ErrInvalidFEN, len(parts))
	}
	for i := len(parts); i < 6; i++ {
		parts = append(parts, fenDefaults[i])
	}

	if err := validatePlacement(parts[0]); err != nil {
		return nil, err
	}
	if parts[1] != "w" && parts[1] != "b" {
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, parts[1])
	}
	if strings.Trim(parts[2], "KQkq") != "" && parts[2] != "-" {
		return nil, fmt.Errorf("%w: invalid castling rights %q", ErrInvalidFEN, parts[2])
	}
	if parts[3] != "-" {
		if _, err := ParseSquare(parts[3]); err != nil {
			return nil, fmt.Errorf("%w: invalid en passant square %q", ErrInvalidFEN, parts[3])
		}
	}
	for _, clock := range parts[4:] {
		if _, err := strconv.Atoi(clock); err != nil {
			return nil, fmt.Errorf("%w: invalid move counter %q", ErrInvalidFEN, clock)
		}
	}

	decoded := dragontoothmg.ParseFen(strings.Join(parts, " "))

	b := NewEmpty()
	placeSide(b, White, &decoded.White)
	placeSide(b, Black, &decoded.Black)
	markMoved(b, parts[2])

	return b, nil
}

// validatePlacement checks the piece placement field before it is decoded.
func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		files := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				files += int(c - '0')
			case c < 0x80 && CellFromChar(byte(c)) != EmptyCell:
				files++
			default:
				return fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, c)
			}
		}
		if files != 8 {
			return fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, 8-i, files)
		}
	}

	return nil
}

// placeSide copies one side's piece bitboards onto the board.
// dragontoothmg numbers squares from a1, so every index is mirrored.
func placeSide(b *Board, c Color, bbs *dragontoothmg.Bitboards) {
	sets := [...]struct {
		pt   PieceType
		mask uint64
	}{
		{Pawn, bbs.Pawns},
		{Knight, bbs.Knights},
		{Bishop, bbs.Bishops},
		{Rook, bbs.Rooks},
		{Queen, bbs.Queens},
		{King, bbs.Kings},
	}
	for _, set := range sets {
		for sq := range Bitboard(set.mask).All() {
			b.AddPiece(NewCell(set.pt, c, false), sq.Mirror())
		}
	}
}

// markMoved sets the has-moved flag on every piece that cannot still be unmoved.
func markMoved(b *Board, castling string) {
	start := New()
	for _, p := range b.Pieces() {
		kind, _ := p.Cell.Kind()
		color, _ := p.Cell.Color()

		unmoved := start.At(p.Square) == p.Cell
		switch kind {
		case King:
			unmoved = unmoved && (hasRight(castling, color, true) || hasRight(castling, color, false))
		case Rook:
			kingSide := p.Square.Col() == 7
			unmoved = unmoved && hasRight(castling, color, kingSide)
		}

		if !unmoved {
			b.AddPiece(p.Cell.WithMoved(), p.Square)
		}
	}
}

func hasRight(castling string, c Color, kingSide bool) bool {
	var r byte = 'Q'
	if kingSide {
		r = 'K'
	}
	if c == Black {
		r += 'a' - 'A'
	}
	return strings.IndexByte(castling, r) >= 0
}

// FEN returns the FEN representation of the board with White to move.
// Castling rights are derived from unmoved kings and rooks on their home squares.
func (b *Board) FEN() string {
	var sb strings.Builder

	// Piece placement
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			cell := b.cells[row*8+col]
			if cell.IsEmpty() {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(cell.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteString(" w ")
	sb.WriteString(b.castlingRights())
	sb.WriteString(" - 0 1")

	return sb.String()
}

// castlingRights returns the FEN castling field for the current board.
func (b *Board) castlingRights() string {
	var rights string
	for _, cp := range castlePaths {
		king, rook := b.cells[cp.king], b.cells[cp.rook]
		if !king.Is(King, cp.color) || !rook.Is(Rook, cp.color) {
			continue
		}
		if moved, _ := king.HasMoved(); moved {
			continue
		}
		if moved, _ := rook.HasMoved(); moved {
			continue
		}
		r := byte('Q')
		if cp.rook.Col() == 7 {
			r = 'K'
		}
		if cp.color == Black {
			r += 'a' - 'A'
		}
		rights += string(r)
	}
	if rights == "" {
		return "-"
	}
	return rights
}
