package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/avelinos/tasktrack-api/cmd/internal"
	internaldomain "github.com/avelinos/tasktrack-api/internal"
	"github.com/avelinos/tasktrack-api/internal/envvar"
	"github.com/avelinos/tasktrack-api/internal/postgresql"
	"github.com/avelinos/tasktrack-api/internal/service"
)

// defaultSchedule runs the purge nightly at 03:00, format is
// "second minute hour dom month dow".
const defaultSchedule = "0 0 3 * * *"

func main() {
	var env string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.Parse()

	errC, err := run(env)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "zap.NewProduction")
	}

	if err := envvar.Load(env); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "envvar.Load")
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewVaultProvider")
	}

	conf := envvar.New(vault)

	pool, err := internal.NewPostgreSQL(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewPostgreSQL")
	}

	retentionDays := service.DefaultRetentionDays
	if v := conf.GetOrDefault("RETENTION_DAYS", ""); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return nil, internaldomain.NewErrorf(internaldomain.ErrorCodeInvalidArgument, "invalid RETENTION_DAYS %q", v)
		}

		retentionDays = days
	}

	repo := postgresql.NewTask(pool)

	purge := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

		purged, err := repo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("purge failed", zap.Error(err))

			return
		}

		logger.Info("purge completed",
			zap.Int64("purged", purged),
			zap.Int("retentionDays", retentionDays),
		)
	}

	scheduler := cron.New(cron.WithSeconds())

	schedule := conf.GetOrDefault("RETENTION_SCHEDULE", defaultSchedule)

	if _, err := scheduler.AddFunc(schedule, purge); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "scheduler.AddFunc")
	}

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		defer func() {
			_ = logger.Sync()
			pool.Close()
			stop()
			close(errC)
		}()

		<-scheduler.Stop().Done()

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Starting scheduler",
			zap.String("schedule", schedule),
			zap.Int("retentionDays", retentionDays),
		)

		scheduler.Start()
	}()

	return errC, nil
}
