package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/udisondev/synergy/internal/game/synergy"
	"github.com/udisondev/synergy/internal/model"
)

// stencilJournal — хранилище журнала трафаретов (db.StencilRepository).
type stencilJournal interface {
	LoadByCharacterID(ctx context.Context, charID int64) (*synergy.StencilBook, error)
	MarkDiscovered(ctx context.Context, charID int64, patternID string, source synergy.DiscoverySource) (bool, error)
	Save(ctx context.Context, charID int64, book *synergy.StencilBook) error
}

// placement is one -place flag value: a stencil overlay request.
type placement struct {
	PatternID string
	At        model.Point
}

// parsePlacement parses "pattern_id@x,y".
func parsePlacement(s string) (placement, error) {
	id, coords, ok := strings.Cut(s, "@")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return placement{}, fmt.Errorf("placement %q: want pattern_id@x,y", s)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return placement{}, fmt.Errorf("placement %q: want pattern_id@x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: y: %w", s, err)
	}
	return placement{PatternID: id, At: model.Point{X: x, Y: y}}, nil
}

// persistStencils records new discoveries one by one and, when overlays were
// moved, rewrites the character's journal so their positions are stored.
func persistStencils(ctx context.Context, journal stencilJournal, charID int64, book *synergy.StencilBook, discovered []string, placed bool) error {
	for _, id := range discovered {
		inserted, err := journal.MarkDiscovered(ctx, charID, id, synergy.DiscoveryPlayerMatch)
		if err != nil {
			return fmt.Errorf("recording discovery: %w", err)
		}
		if inserted {
			slog.Info("stencil discovered", "character", charID, "pattern", id)
		}
	}

	if !placed {
		return nil
	}
	if err := journal.Save(ctx, charID, book); err != nil {
		return fmt.Errorf("saving stencils: %w", err)
	}
	return nil
}
