package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	actionNew  = "new"
	actionPlay = "play"
	actionJump = "jump"
	actionSort = "sort"
	actionShow = "show"
	actionHelp = "help"
	actionQuit = "quit"
)

var (
	ErrEmptyMessage  = errors.New("empty message")
	ErrInvalidArgs   = errors.New("invalid arguments")
	errQuitRequested = errors.New("quit requested")
)

// Message is one command line split into its action and arguments.
type Message struct {
	Action string
	Args   []string
}

func parseMessage(line string) (*Message, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyMessage
	}

	return &Message{
		Action: strings.ToLower(fields[0]),
		Args:   fields[1:],
	}, nil
}

// cellArg accepts either a board index or a row and a column.
func (that *Message) cellArg() (int, error) {
	switch len(that.Args) {
	case 1:
		cell, err := strconv.Atoi(that.Args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: cell %q", ErrInvalidArgs, that.Args[0])
		}
		return cell, nil
	case 2:
		row, err := strconv.Atoi(that.Args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: row %q", ErrInvalidArgs, that.Args[0])
		}

		col, err := strconv.Atoi(that.Args[1])
		if err != nil {
			return 0, fmt.Errorf("%w: col %q", ErrInvalidArgs, that.Args[1])
		}

		cell, err := entity.Index(row, col)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		return cell, nil
	default:
		return 0, fmt.Errorf("%w: expected <index> or <row> <col>", ErrInvalidArgs)
	}
}

func (that *Message) moveArg() (int, error) {
	if len(that.Args) != 1 {
		return 0, fmt.Errorf("%w: expected <move>", ErrInvalidArgs)
	}

	move, err := strconv.Atoi(that.Args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: move %q", ErrInvalidArgs, that.Args[0])
	}

	return move, nil
}
