// Package game keeps the sequence of board snapshots of one game together with the
// cursor selecting the displayed snapshot.
//
// A History is not safe for concurrent use.
package game

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// EventKind names the mutation that produced an Event.
type EventKind string

const (
	EventPlay        EventKind = "play"
	EventJump        EventKind = "jump"
	EventToggleOrder EventKind = "toggle-order"
)

// Event is passed to listeners after every accepted mutation.
type Event struct {
	Kind   EventKind
	Cursor int
	Length int
	Order  entity.DisplayOrder
}

type Listener func(Event)

// Entry is one snapshot of the move list.
type Entry struct {
	Move    int
	Board   entity.Board
	Current bool
}

type History struct {
	snapshots []entity.Board
	cursor    int
	order     entity.DisplayOrder

	listeners []Listener
}

type Option func(*History)

func WithDisplayOrder(order entity.DisplayOrder) Option {
	return func(h *History) {
		h.order = order
	}
}

func WithListener(listener Listener) Option {
	return func(h *History) {
		h.OnChange(listener)
	}
}

// NewHistory returns a history holding only the empty board.
func NewHistory(opts ...Option) *History {
	history := &History{
		snapshots: []entity.Board{entity.NewBoard()},
		order:     entity.Ascending,
	}

	for _, opt := range opts {
		opt(history)
	}

	return history
}

// OnChange registers a listener. Nil listeners are ignored.
func (that *History) OnChange(listener Listener) {
	if listener == nil {
		return
	}
	that.listeners = append(that.listeners, listener)
}

func (that *History) Current() entity.Board {
	return that.snapshots[that.cursor]
}

func (that *History) Cursor() int {
	return that.cursor
}

func (that *History) Length() int {
	return len(that.snapshots)
}

func (that *History) NextMark() entity.Cell {
	return tictactoe.NextMark(that.cursor)
}

func (that *History) Status() string {
	return tictactoe.Status(that.Current(), that.cursor)
}

func (that *History) Snapshot(move int) (entity.Board, error) {
	if err := that.checkMove(move); err != nil {
		return entity.Board{}, err
	}

	return that.snapshots[move], nil
}

// Play discards every snapshot after the cursor and appends next. The move is rejected with
// ErrInvalidMove, leaving the history untouched, unless next is the current board with exactly
// one empty cell taken by the mark whose turn it is.
func (that *History) Play(next entity.Board) error {
	if err := that.validateMove(next); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	that.snapshots = append(that.snapshots[:that.cursor+1:that.cursor+1], next)
	that.cursor = len(that.snapshots) - 1

	that.notify(EventPlay)

	return nil
}

// PlayCell places the mark whose turn it is at cell and plays the resulting board.
func (that *History) PlayCell(cell int) error {
	current := that.Current()

	if tictactoe.Evaluate(current) != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	next, err := current.Place(cell, that.NextMark())
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	return that.Play(next)
}

func (that *History) JumpTo(move int) error {
	if err := that.checkMove(move); err != nil {
		return err
	}

	that.cursor = move

	that.notify(EventJump)

	return nil
}

func (that *History) DisplayOrder() entity.DisplayOrder {
	return that.order
}

func (that *History) ToggleDisplayOrder() {
	that.order = that.order.Toggle()

	that.notify(EventToggleOrder)
}

// Entries lists every snapshot in display order.
func (that *History) Entries() []Entry {
	entries := make([]Entry, 0, len(that.snapshots))
	for move, board := range that.snapshots {
		entries = append(entries, Entry{
			Move:    move,
			Board:   board,
			Current: move == that.cursor,
		})
	}

	if that.order.IsDescending() {
		slices.Reverse(entries)
	}

	return entries
}

func (that *History) checkMove(move int) error {
	if move < 0 || move >= len(that.snapshots) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrIndexOutOfRange, move, len(that.snapshots))
	}

	return nil
}

// validateMove checks that next differs from the current board by one newly taken cell.
func (that *History) validateMove(next entity.Board) error {
	current := that.Current()

	if tictactoe.Evaluate(current) != nil {
		return apperror.ErrGameFinished
	}

	changed := -1
	for i := range current {
		if current[i] == next[i] {
			continue
		}

		if !current[i].IsEmpty() {
			return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, i)
		}

		if changed != -1 {
			return fmt.Errorf("more than one cell changed: %d and %d", changed, i)
		}

		changed = i
	}

	if changed == -1 {
		return fmt.Errorf("%w: no cell changed", apperror.ErrInvalidCell)
	}

	if mark := next[changed]; mark != that.NextMark() {
		return fmt.Errorf("%w: %s played on %s's turn", apperror.ErrNotYourTurn, mark, that.NextMark())
	}

	return nil
}

func (that *History) notify(kind EventKind) {
	event := Event{
		Kind:   kind,
		Cursor: that.cursor,
		Length: len(that.snapshots),
		Order:  that.order,
	}

	for _, listener := range that.listeners {
		listener(event)
	}
}
