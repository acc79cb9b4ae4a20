package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/console"
)

// RunApp - runs the application on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - serves the console on in and out until the input ends, the player quits or a signal arrives.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	order, err := conf.Order()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	gameRepo := repository.NewGameRepository()
	gameManager := usecase.NewGameManager(logger, gameRepo, order)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "display-order", order)
		consoleServer := console.New(logger, gameManager, conf.NoColor)
		consoleErrCh <- consoleServer.Start(ctx, in, out)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Console closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
