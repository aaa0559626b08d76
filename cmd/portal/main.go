// Package main is the entry point for the Carmel School student portal - a
// menu-driven console application over a fixed in-memory academic record.
//
// The architecture follows Clean Architecture:
// - Domain: student, noticeboard, exam and timetable entities, no external deps
// - Application: session state plus read-only query handlers (CQRS queries)
// - Infrastructure: seed generator and the in-memory record store
// - Interface: the console prompter, presenters and navigation state machine
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/carmel-jorhat/student-portal/config"
	"github.com/carmel-jorhat/student-portal/internal/application/query"
	"github.com/carmel-jorhat/student-portal/internal/application/session"
	"github.com/carmel-jorhat/student-portal/internal/infrastructure/seed"
	"github.com/carmel-jorhat/student-portal/internal/interface/console"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Info("starting student portal",
		"env", cfg.App.Environment,
		"debug", cfg.App.Debug,
		"school", cfg.School.Name,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. RECORD STORE (seeded once, read-only afterwards)
	// ─────────────────────────────────────────────────────────────────────────
	seedValue := cfg.Seed.RandomSource
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	store, err := seed.New(rand.New(rand.NewSource(seedValue))).Build()
	if err != nil {
		return fmt.Errorf("failed to build record store: %w", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	log.Info("record store seeded", "students", count)

	// ─────────────────────────────────────────────────────────────────────────
	// 4. APPLICATION LAYER
	// ─────────────────────────────────────────────────────────────────────────
	sess := session.New(store)
	school := query.SchoolInfo{
		Name:    cfg.School.Name,
		Class:   cfg.School.Class,
		Section: cfg.School.Section,
	}

	deps := console.Dependencies{
		Session:        sess,
		StudentRepo:    store,
		ProfileQuery:   query.NewGetProfileHandler(store, school),
		FeeQuery:       query.NewGetFeeHistoryHandler(store),
		AcademicQuery:  query.NewGetAcademicReportHandler(store),
		NoticeQuery:    query.NewGetNoticeBoardHandler(store),
		TimetableQuery: query.NewGetTimetableHandler(store),
		ExamsQuery:     query.NewGetUpcomingExamsHandler(store),
		Logger:         log,
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. CONSOLE INTERFACE
	// ─────────────────────────────────────────────────────────────────────────
	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	menu := console.NewMenu(prompter, os.Stdout, cfg.School.Name, deps)

	log.Info("portal ready", "session_id", sess.ID)
	if err := menu.Run(ctx); err != nil {
		return fmt.Errorf("portal loop failed: %w", err)
	}

	log.Info("portal closed", "session_id", sess.ID)
	return nil
}

// setupLogger configures structured logging: readable text in development,
// JSON in production.
func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.App.Debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
