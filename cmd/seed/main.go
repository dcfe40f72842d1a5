package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/config"
	"github.com/crewcall-dev/crew-manager/backend/internal/repository"
	"github.com/crewcall-dev/crew-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var shiftID int64

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random workers, 2: insert random shifts, 3: fill a shift's slots with random assignments)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Int64Var(&shiftID, "shift-id", 0, "shift to fill with random assignments")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect; ping to fail fast on a bad DSN
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 1:
		seed.SeedRandomWorkers(repo, n)
	case 2:
		seed.SeedRandomShifts(repo, n)
	case 3:
		if shiftID == 0 {
			logger.Error("op 3 requires -shift-id")
			os.Exit(1)
		}
		seed.SeedRandomAssignments(repo, shiftID)
	default:
		logger.Error("unknown operation", "op", op)
		os.Exit(1)
	}
}
