package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opsworker/cmd"
	"opsworker/internal/core/application/router"

	"github.com/labstack/echo/v4"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFile := pflag.String("env-file", ".env", "env file loaded before reading the environment")
	runJob := pflag.String("run", "", "run one job by name and exit")
	var job router.Job
	pflag.StringVar(&job.Notify, "notify", "", "phone or group the job reports to")
	pflag.StringVar(&job.Phone, "phone", "", "customer phone for "+router.JobSyncContact)
	pflag.StringVar(&job.Attributes, "attributes", "", "silence attributes for "+router.JobSilenceAlert)
	pflag.StringVar(&job.Contact, "contact", "", "silence author for "+router.JobSilenceAlert)
	pflag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *runJob != "" {
		job.Name = *runJob
		err = runOnce(ctx, configs, logger, job)
	} else {
		err = serve(ctx, configs, logger)
	}
	if err != nil {
		logger.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}

func runOnce(ctx context.Context, configs cmd.Config, logger *slog.Logger, job router.Job) error {
	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	r, err := app.CreateRouter()
	if err != nil {
		return err
	}
	return r.Dispatch(ctx, job)
}

func serve(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	r, err := app.CreateRouter()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager(r)
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.CreateConsumer(r).Run(ctx)
	})

	e := echo.New()
	e.HideBanner = true
	if err := app.CreateHTTPServer(r).Register(e); err != nil {
		return err
	}
	g.Go(func() error {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	logger.Info("worker started", "queue", configs.JobQueue, "http_port", configs.HTTPPort, "scheduled_jobs", jobManager.Len())
	return g.Wait()
}
