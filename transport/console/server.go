package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*usecase.View, error)
	GetView(ctx context.Context, id string) (*usecase.View, error)
	Click(ctx context.Context, id string, cell int) (*usecase.View, error)
	JumpTo(ctx context.Context, id string, move int) (*usecase.View, error)
	ToggleOrder(ctx context.Context, id string) (*usecase.View, error)
	EndGame(ctx context.Context, id string) error
}

type handler func(ctx context.Context, message *Message, writer io.Writer) error

// Server reads one command per line and redraws the game after every command.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	renderer    *renderer

	gameID   string
	handlers map[string]handler
}

func New(logger *slog.Logger, gameUseCase gameUseCase, noColor bool) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		renderer:    &renderer{noColor: noColor},
	}

	server.handlers = map[string]handler{
		actionNew:  server.handleNewGame,
		actionPlay: server.handlePlay,
		actionJump: server.handleJump,
		actionSort: server.handleSort,
		actionShow: server.handleShow,
		actionHelp: server.handleHelp,
		actionQuit: server.handleQuit,
	}

	return server
}

// Start - starts a game and serves commands from in until EOF, quit or ctx cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	if err := that.handleNewGame(ctx, nil, out); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	defer that.endGame(context.WithoutCancel(ctx))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		message, err := parseMessage(scanner.Text())
		if errors.Is(err, ErrEmptyMessage) {
			continue
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			if err = that.renderer.renderHelp(out); err != nil {
				return err
			}
			continue
		}

		err = handle(ctx, message, out)
		if errors.Is(err, errQuitRequested) {
			log.Info("quit requested")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, _ *Message, writer io.Writer) error {
	that.endGame(ctx)

	view, err := that.gameUseCase.NewGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	that.gameID = view.ID

	return that.renderer.render(writer, view)
}

func (that *Server) handlePlay(ctx context.Context, message *Message, writer io.Writer) error {
	log := that.logger.With("method", "handlePlay")

	cell, err := message.cellArg()
	if err != nil {
		return that.renderer.renderError(writer, err)
	}

	view, err := that.gameUseCase.Click(ctx, that.gameID, cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		log.Debug("click ignored", "cell", cell, "error", err)
		return that.renderer.render(writer, view)
	}

	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return that.renderer.render(writer, view)
}

func (that *Server) handleJump(ctx context.Context, message *Message, writer io.Writer) error {
	move, err := message.moveArg()
	if err != nil {
		return that.renderer.renderError(writer, err)
	}

	view, err := that.gameUseCase.JumpTo(ctx, that.gameID, move)
	if errors.Is(err, apperror.ErrIndexOutOfRange) {
		return that.renderer.renderError(writer, err)
	}

	if err != nil {
		return fmt.Errorf("failed to jump: %w", err)
	}

	return that.renderer.render(writer, view)
}

func (that *Server) handleSort(ctx context.Context, _ *Message, writer io.Writer) error {
	view, err := that.gameUseCase.ToggleOrder(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to toggle order: %w", err)
	}

	return that.renderer.render(writer, view)
}

func (that *Server) handleShow(ctx context.Context, _ *Message, writer io.Writer) error {
	view, err := that.gameUseCase.GetView(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	return that.renderer.render(writer, view)
}

func (that *Server) handleHelp(_ context.Context, _ *Message, writer io.Writer) error {
	return that.renderer.renderHelp(writer)
}

func (that *Server) handleQuit(_ context.Context, _ *Message, _ io.Writer) error {
	return errQuitRequested
}

func (that *Server) endGame(ctx context.Context) {
	if that.gameID == "" {
		return
	}

	if err := that.gameUseCase.EndGame(ctx, that.gameID); err != nil {
		that.logger.Error("failed to end game", "gameID", that.gameID, "error", err)
	}

	that.gameID = ""
}
