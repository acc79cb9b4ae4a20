package tictactoe

import "github.com/rocketscienceinc/tictactoe/internal/entity"

const (
	StatusDraw       = "Draw"
	statusWinner     = "Winner: "
	statusNextPlayer = "Next player: "
)

// WinResult describes a completed line.
type WinResult struct {
	Mark entity.Cell
	Line [3]int
}

// Evaluate returns the first completed line in WinCombos order, or nil when there is none.
func Evaluate(board entity.Board) *WinResult {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return &WinResult{Mark: a, Line: combo}
		}
	}

	return nil
}

// IsDraw reports a full board without a winner.
func IsDraw(board entity.Board) bool {
	return Evaluate(board) == nil && board.IsFull()
}

// IsFinished reports whether no further move is accepted on board.
func IsFinished(board entity.Board) bool {
	return Evaluate(board) != nil || board.IsFull()
}

// NextMark returns the mark to play at cursor. X always starts.
func NextMark(cursor int) entity.Cell {
	if cursor%2 == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// Status renders the status line shown above the board.
func Status(board entity.Board, cursor int) string {
	if result := Evaluate(board); result != nil {
		return statusWinner + string(result.Mark)
	}

	if board.IsFull() {
		return StatusDraw
	}

	return statusNextPlayer + string(NextMark(cursor))
}
