// Package session owns a board on behalf of the application shell.
// Queries share a read lock; moves and restarts take the write lock.
package session

import (
	"sync"

	"github.com/apex/log"

	"github.com/hailam/chesscore/internal/board"
)

// Session holds one board and mediates concurrent access to it.
type Session struct {
	mu    sync.RWMutex
	board *board.Board
	log   log.Interface
}

// Option configures a Session.
type Option func(*Session)

// WithBoard starts the session from the given board instead of the starting position.
// The session takes a copy, so the caller keeps no alias to its state.
func WithBoard(b *board.Board) Option {
	return func(s *Session) {
		s.board = b.Copy()
	}
}

// New creates a session in the starting position.
func New(logger log.Interface, opts ...Option) *Session {
	if logger == nil {
		logger = log.Log
	}
	s := &Session{
		board: board.New(),
		log:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns a snapshot of the occupied squares.
func (s *Session) Board() board.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Snapshot()
}

// Cell returns the cell on sq.
func (s *Session) Cell(sq board.Square) board.Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.At(sq)
}

// LegalMoves returns the destinations of the piece on sq.
func (s *Session) LegalMoves(sq board.Square) board.Bitboard {
	s.mu.RLock()
	moves := s.board.LegalMoves(sq)
	s.mu.RUnlock()

	s.log.WithFields(log.Fields{
		"square": sq.String(),
		"moves":  moves.PopCount(),
	}).Debug("legal moves")

	return moves
}

// Move applies a move that must be among the generated destinations and
// returns the resulting snapshot. A rejected move leaves the board unchanged.
func (s *Session) Move(from, to board.Square) (board.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := s.log.WithFields(log.Fields{
		"from": from.String(),
		"to":   to.String(),
	})

	if err := s.board.MovePiece(from, to); err != nil {
		ctx.WithError(err).Warn("move rejected")
		return s.board.Snapshot(), err
	}

	ctx.Debug("move applied")
	return s.board.Snapshot(), nil
}

// ForceMove applies a move without consulting the generated destinations.
func (s *Session) ForceMove(from, to board.Square) board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board.MovePieceUnchecked(from, to)
	s.log.WithFields(log.Fields{
		"from": from.String(),
		"to":   to.String(),
	}).Debug("unchecked move applied")

	return s.board.Snapshot()
}

// Restart restores the starting position.
func (s *Session) Restart() board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board.Reset()
	s.log.Info("board reset")

	return s.board.Snapshot()
}

// LoadFEN replaces the board with the position described by fen.
// On error the current board is kept.
func (s *Session) LoadFEN(fen string) (board.Snapshot, error) {
	b, err := board.ParseFEN(fen)
	if err != nil {
		s.log.WithError(err).WithField("fen", fen).Warn("fen rejected")
		return s.Board(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = b
	s.log.WithField("fen", fen).Info("position loaded")

	return s.board.Snapshot(), nil
}

// FEN returns the current board in FEN notation.
func (s *Session) FEN() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.FEN()
}
