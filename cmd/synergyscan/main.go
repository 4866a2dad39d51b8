// Command synergyscan detects synergy patterns in an inventory layout and
// prints the resulting bonuses.
//
// Usage:
//
//	synergyscan -layout inventory.yaml [-config config/synergy.yaml] [-ticks 10] [-place twin_rings@0,0]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/synergy/internal/config"
	"github.com/udisondev/synergy/internal/data"
	"github.com/udisondev/synergy/internal/db"
	"github.com/udisondev/synergy/internal/game/synergy"
)

const DefaultConfigPath = "config/synergy.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("synergyscan", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", DefaultConfigPath, "path to YAML config")
	layoutPath := fs.String("layout", "", "path to YAML inventory layout (required)")
	ticks := fs.Int("ticks", 0, "award points this many times after detection")
	var placements []placement
	fs.Func("place", "overlay a discovered stencil, pattern_id@x,y (repeatable)", func(v string) error {
		p, err := parsePlacement(v)
		if err != nil {
			return err
		}
		placements = append(placements, p)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *layoutPath == "" {
		return fmt.Errorf("-layout is required")
	}

	if p := os.Getenv("SYNERGY_CONFIG"); p != "" && *configPath == DefaultConfigPath {
		*configPath = p
	}
	cfg, err := config.LoadSynergy(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	patterns, err := loadCatalog(ctx, cfg.CatalogDir)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	detector, err := data.NewDetector(patterns)
	if err != nil {
		return err
	}

	inv, character, err := loadLayout(*layoutPath)
	if err != nil {
		return err
	}

	book := synergy.NewStencilBook()
	var journal stencilJournal
	if cfg.PersistStencils {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer database.Close()

		if _, err := database.Migrate(ctx); err != nil {
			return err
		}
		journal = db.NewStencilRepository(database.Pool())
		if book, err = journal.LoadByCharacterID(ctx, character.ID); err != nil {
			return fmt.Errorf("loading stencils: %w", err)
		}
	}

	opts := []synergy.TrackerOption{synergy.WithStencilBook(book)}
	if cfg.PreferEarnedPoints {
		opts = append(opts, synergy.WithOrder(synergy.PreferEarnedPoints))
	}
	tracker := synergy.NewTracker(detector, character, opts...)

	res := tracker.Refresh(inv.Snapshot())
	slog.Debug("inventory scanned",
		"character", character.ID,
		"matches", res.Matches,
		"groups", res.Groups,
		"rejected", res.Rejected)

	for _, p := range placements {
		if err := book.Place(p.PatternID, p.At); err != nil {
			return fmt.Errorf("placing stencil %s: %w", p.PatternID, err)
		}
	}

	for range *ticks {
		if err := ctx.Err(); err != nil {
			return err
		}
		tracker.AwardPoints(cfg.PointsPerTick)
	}

	for _, p := range tracker.ReadyToUnlock() {
		slog.Info("synergy skill ready to unlock",
			"character", character.ID,
			"pattern", p.ID(),
			"skill", p.UnlockedSkill())
	}

	if err := writeReport(out, tracker, res, character); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if journal != nil {
		return persistStencils(ctx, journal, character.ID, book, res.NewlyDiscovered, len(placements) > 0)
	}
	return nil
}

func loadCatalog(ctx context.Context, dir string) ([]*synergy.SynergyPattern, error) {
	if dir == "" {
		return data.LoadDefaultCatalog(ctx)
	}
	return data.LoadPatternDir(ctx, dir)
}

// parseLogLevel maps config log level to slog.Level; unknown values mean info.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
