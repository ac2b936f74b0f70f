package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robalyx/teampulse/internal/setup"
	"github.com/sourcegraph/conc/pool"
	"github.com/robalyx/teampulse/internal/worker/summary"
	"github.com/urfave/cli/v3"
)

const (
	// WorkerLogDir specifies where worker log files are stored.
	WorkerLogDir = "logs/worker_logs"

	// SummaryWorker snapshots daily reports and prunes old data.
	SummaryWorker = "summary"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "worker",
		Usage: "Start the teampulse workers",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   1,
				Usage:   "Number of workers to start",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  SummaryWorker,
				Usage: "Start daily summary workers",
				Action: func(ctx context.Context, c *cli.Command) error {
					runWorkers(ctx, SummaryWorker, c.Int("workers"))
					return nil
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// runWorkers starts multiple instances of a worker type and blocks until
// they all stop.
func runWorkers(ctx context.Context, workerType string, count int64) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	app, err := setup.InitializeApp(ctx, WorkerLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	p := pool.New()

	for i := range count {
		workerID := i

		p.Go(func() {
			workerLogger := setup.GetWorkerLogger(
				fmt.Sprintf("%s_worker_%d", workerType, workerID),
				WorkerLogDir,
				app.Config.Common.Debug.LogLevel,
			)

			var w interface{ Start(context.Context) }

			switch workerType {
			case SummaryWorker:
				w = summary.New(app, workerLogger)
			default:
				log.Fatalf("Invalid worker type: %s", workerType)
			}

			w.Start(ctx)
		})
	}

	log.Printf("Started %d %s workers", count, workerType)
	p.Wait()
	log.Println("All workers have finished. Exiting.")
}
