package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const (
	colorX = "1"
	colorO = "4"

	rowSeparator = "---+---+---"
)

const helpText = `commands:
  new              start a new game
  play <i>         play cell i (0-8, row-major)
  play <row> <col> play the cell at row, col (0-2)
  jump <move>      go back to a move of the list
  sort             toggle ascending/descending move list
  show             redraw the game
  help             show this help
  quit             leave
`

type renderer struct {
	noColor bool
}

func (that *renderer) output(w io.Writer) *termenv.Output {
	if that.noColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

func (that *renderer) render(w io.Writer, view *usecase.View) error {
	out := that.output(w)

	var sb strings.Builder

	sb.WriteString(out.String(view.Status).Bold().String())
	sb.WriteByte('\n')

	for row := 0; row < entity.LineSize; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
			sb.WriteByte('\n')
		}

		cells := make([]string, 0, entity.LineSize)
		for col := 0; col < entity.LineSize; col++ {
			cell := row*entity.LineSize + col
			cells = append(cells, " "+that.cell(out, view, cell)+" ")
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "moves (%s):\n", view.Order)
	for _, move := range view.Moves {
		line := fmt.Sprintf("  %d. %s", move.Move, move.Description)
		if move.Current {
			line = out.String(line).Bold().String()
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write view: %w", err)
	}

	return nil
}

func (that *renderer) cell(out *termenv.Output, view *usecase.View, cell int) string {
	mark := view.Board[cell]

	style := out.String(mark.String())
	switch mark {
	case entity.PlayerX:
		style = style.Foreground(out.Color(colorX))
	case entity.PlayerO:
		style = style.Foreground(out.Color(colorO))
	}

	if view.IsWinningCell(cell) {
		style = style.Bold().Underline()
	}

	return style.String()
}

func (that *renderer) renderError(w io.Writer, err error) error {
	out := that.output(w)

	if _, werr := fmt.Fprintln(w, out.String("error: "+err.Error()).Foreground(out.Color(colorX)).String()); werr != nil {
		return fmt.Errorf("failed to write error: %w", werr)
	}

	return nil
}

func (that *renderer) renderHelp(w io.Writer) error {
	if _, err := io.WriteString(w, helpText); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}

	return nil
}
