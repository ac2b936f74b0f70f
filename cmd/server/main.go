package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robalyx/teampulse/internal/chat"
	"github.com/robalyx/teampulse/internal/setup"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// ServerLogDir specifies where server log files are stored.
	ServerLogDir = "logs/server_logs"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "server",
		Usage: "Start the teampulse HTTP server",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return runServer(ctx)
		},
	}

	return app.Run(context.Background(), os.Args)
}

// runServer starts the HTTP server and blocks until an interrupt arrives.
func runServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	app, err := setup.InitializeApp(ctx, ServerLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	handler := chat.NewHandler(
		app.DB.Service().Ingest(),
		app.DB.Service().Metrics(),
		app.Statistics,
		app.Logger,
	)
	server := chat.NewServer(&app.Config.Server, handler, app.Logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	g.Go(func() error {
		<-ctx.Done()
		return server.Shutdown()
	})

	if err := g.Wait(); err != nil {
		app.Logger.Error("Server exited with error", zap.Error(err))
		return err
	}

	app.Logger.Info("Server stopped")

	return nil
}
