package board

import "errors"

var (
	// ErrEmptySquare is returned when a move starts on a square without a piece.
	ErrEmptySquare = errors.New("board: no piece on square")
	// ErrIllegalMove is returned when the destination is not among the generated moves.
	ErrIllegalMove = errors.New("board: illegal move")
	// ErrInvalidSquare is returned for square names or indices outside the board.
	ErrInvalidSquare = errors.New("board: invalid square")
	// ErrInvalidFEN is returned when a FEN string cannot be decoded.
	ErrInvalidFEN = errors.New("board: invalid FEN")
)
