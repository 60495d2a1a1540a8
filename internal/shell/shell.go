// Package shell implements a line protocol over a session: one command per
// input line, one JSON reply per output line.
package shell

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/session"
)

// Shell reads commands and answers them from a session.
type Shell struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
	log     log.Interface
}

// reply is the JSON envelope written for every command.
type reply struct {
	Board *board.Snapshot `json:"board,omitempty"`
	Moves *board.Bitboard `json:"moves,omitempty"`
	FEN   string          `json:"fen,omitempty"`
	Error string          `json:"error,omitempty"`
}

// New creates a shell bound to a session.
func New(s *session.Session, in io.Reader, out io.Writer, logger log.Interface) *Shell {
	if logger == nil {
		logger = log.Log
	}
	return &Shell{
		session: s,
		in:      in,
		out:     out,
		log:     logger,
	}
}

// Run processes commands until "quit" or the end of input.
func (sh *Shell) Run() error {
	scanner := bufio.NewScanner(sh.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		if cmd == "quit" {
			return nil
		}
		if err := sh.write(sh.handle(cmd, args)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// handle dispatches a single command.
func (sh *Shell) handle(cmd string, args []string) reply {
	switch cmd {
	case "board":
		return withBoard(sh.session.Board())
	case "moves":
		return sh.handleMoves(args)
	case "move", "force":
		return sh.handleMove(cmd == "force", args)
	case "restart":
		return withBoard(sh.session.Restart())
	case "fen":
		return sh.handleFEN(args)
	default:
		sh.log.WithField("command", cmd).Warn("unknown command")
		return reply{Error: fmt.Sprintf("unknown command %q", cmd)}
	}
}

// handleMoves answers "moves <square>".
func (sh *Shell) handleMoves(args []string) reply {
	if len(args) != 1 {
		return reply{Error: "usage: moves <square>"}
	}
	sq, err := parseSquare(args[0])
	if err != nil {
		sh.log.WithError(err).Warn("bad square")
		return reply{Error: err.Error()}
	}
	moves := sh.session.LegalMoves(sq)
	return reply{Moves: &moves}
}

// handleMove answers "move <from> <to>" and "force <from> <to>".
func (sh *Shell) handleMove(force bool, args []string) reply {
	if len(args) != 2 {
		return reply{Error: "usage: move <from> <to>"}
	}
	from, err := parseSquare(args[0])
	if err != nil {
		sh.log.WithError(err).Warn("bad square")
		return reply{Error: err.Error()}
	}
	to, err := parseSquare(args[1])
	if err != nil {
		sh.log.WithError(err).Warn("bad square")
		return reply{Error: err.Error()}
	}

	if force {
		return withBoard(sh.session.ForceMove(from, to))
	}

	snap, err := sh.session.Move(from, to)
	r := withBoard(snap)
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// handleFEN answers "fen" with the current position and "fen <fen>" by loading it.
func (sh *Shell) handleFEN(args []string) reply {
	if len(args) == 0 {
		return reply{FEN: sh.session.FEN()}
	}
	snap, err := sh.session.LoadFEN(strings.Join(args, " "))
	if err != nil {
		return reply{Error: err.Error()}
	}
	r := withBoard(snap)
	r.FEN = sh.session.FEN()
	return r
}

func withBoard(snap board.Snapshot) reply {
	return reply{Board: &snap}
}

func (sh *Shell) write(r reply) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = sh.out.Write(data)
	return err
}

// parseSquare accepts either a square index (0-63) or an algebraic name.
func parseSquare(s string) (board.Square, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 63 {
			return board.NoSquare, fmt.Errorf("%w: %d", board.ErrInvalidSquare, n)
		}
		return board.Square(n), nil
	}
	return board.ParseSquare(strings.ToLower(s))
}
