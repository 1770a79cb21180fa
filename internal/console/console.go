// Package console runs a game on a text stream: it renders the board, reads
// one move per line and reports whether the move was accepted.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/consolechess/internal/model"
)

const (
	msgInvalidFormat = "invalid format"
	msgMoveInvalid   = "move invalid"
)

type Session struct {
	board *model.Board
	in    *bufio.Scanner
	out   io.Writer
}

func NewSession(board *model.Board, in io.Reader, out io.Writer) *Session {
	return &Session{
		board: board,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops until the input ends, the player quits, or the game has a winner.
func (s *Session) Run() error {
	s.render()
	for {
		if winner, ok := s.board.Winner(); ok {
			fmt.Fprintf(s.out, "%s wins\n", winner)
			return nil
		}
		fmt.Fprintf(s.out, "%s to move> ", s.board.Turn())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		line := strings.TrimSpace(s.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "resign":
			s.board.SetWinner(s.board.Turn().Opponent())
			continue
		case "help":
			fmt.Fprintln(s.out, "enter a move like e2e4, or resign, or quit")
			continue
		}

		if err := s.play(line); err != nil {
			if errors.Is(err, model.ErrInvalidFormat) {
				fmt.Fprintln(s.out, msgInvalidFormat)
			} else {
				fmt.Fprintln(s.out, msgMoveInvalid)
			}
			continue
		}
		s.render()
	}
}

func (s *Session) play(line string) error {
	move, err := model.ParseMove(line)
	if err != nil {
		return err
	}
	if !s.board.Apply(move) {
		return model.ErrIllegalMove
	}
	return nil
}

func (s *Session) render() {
	fmt.Fprint(s.out, s.board.Render())
}
