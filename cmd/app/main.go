package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"deliveryrates/cmd"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := cmd.NewLogger(config, os.Stderr)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	app := cmd.NewCompositionRoot(config, logger, prometheus.NewRegistry())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cmd.DefaultSeedEvents()
	if config.SeedFile != "" {
		if seed, err = cmd.LoadSeedEvents(config.SeedFile); err != nil {
			log.Fatalf("Error loading seed events: %v", err)
		}
	}
	if err = app.Seed(ctx, seed); err != nil {
		log.Fatalf("Error seeding store: %v", err)
	}

	query, err := app.CreateGetDeliveryRatesQuery()
	if err != nil {
		log.Fatalf("Error creating rate query: %v", err)
	}
	if err = app.CreateReporter().Report(ctx, os.Stdout, query); err != nil {
		log.Fatalf("Error reporting rates: %v", err)
	}

	runJobs(ctx, &app, logger)
}

func runJobs(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) {
	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if !jobManager.Enabled() {
		return
	}

	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	<-ctx.Done()
	logger.InfoContext(context.Background(), "Shutting down")
}
