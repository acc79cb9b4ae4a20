package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/game"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const descriptionGameStart = "Go to game start"

// View is everything a renderer needs to draw one game.
type View struct {
	ID       string
	Board    entity.Board
	Status   string
	Winner   *tictactoe.WinResult
	Cursor   int
	Length   int
	Order    entity.DisplayOrder
	Finished bool
	Moves    []MoveItem
}

// MoveItem is one row of the move list. Rows follow the display order while Move keeps its number.
type MoveItem struct {
	Move        int
	Description string
	Current     bool
}

func newView(g *game.Game) *View {
	history := g.History
	current := history.Current()

	entries := history.Entries()
	moves := make([]MoveItem, 0, len(entries))
	for _, entry := range entries {
		moves = append(moves, MoveItem{
			Move:        entry.Move,
			Description: describeMove(entry),
			Current:     entry.Current,
		})
	}

	return &View{
		ID:       g.ID,
		Board:    current,
		Status:   history.Status(),
		Winner:   tictactoe.Evaluate(current),
		Cursor:   history.Cursor(),
		Length:   history.Length(),
		Order:    history.DisplayOrder(),
		Finished: tictactoe.IsFinished(current),
		Moves:    moves,
	}
}

func describeMove(entry game.Entry) string {
	switch {
	case entry.Current:
		return fmt.Sprintf("You are at move %d", entry.Move)
	case entry.Move > 0:
		return fmt.Sprintf("Go to move #%d", entry.Move)
	default:
		return descriptionGameStart
	}
}

// IsWinningCell reports whether cell belongs to the completed line.
func (that *View) IsWinningCell(cell int) bool {
	if that.Winner == nil {
		return false
	}

	for _, idx := range that.Winner.Line {
		if idx == cell {
			return true
		}
	}

	return false
}
