package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/synergy/internal/game/synergy"
	"github.com/udisondev/synergy/internal/model"
)

// StencilRepository хранит журнал найденных трафаретов синергий.
//
// Only discovery state and overlay position are stored. Matches, groups and
// synergy points are rebuilt from the inventory every session.
type StencilRepository struct {
	db *pgxpool.Pool
}

// NewStencilRepository создаёт новый StencilRepository.
func NewStencilRepository(db *pgxpool.Pool) *StencilRepository {
	return &StencilRepository{db: db}
}

// LoadByCharacterID загружает книгу трафаретов персонажа.
func (r *StencilRepository) LoadByCharacterID(ctx context.Context, charID int64) (*synergy.StencilBook, error) {
	query := `
		SELECT pattern_id, source, overlay_x, overlay_y
		FROM character_stencils
		WHERE character_id = $1
		ORDER BY pattern_id
	`

	rows, err := r.db.Query(ctx, query, charID)
	if err != nil {
		return nil, fmt.Errorf("querying stencils for character %d: %w", charID, err)
	}
	defer rows.Close()

	book := synergy.NewStencilBook()
	for rows.Next() {
		var (
			patternID, sourceName string
			overlayX, overlayY    *int32
		)
		if err := rows.Scan(&patternID, &sourceName, &overlayX, &overlayY); err != nil {
			return nil, fmt.Errorf("scanning stencil row: %w", err)
		}

		source, err := synergy.ParseDiscoverySource(sourceName)
		if err != nil {
			return nil, fmt.Errorf("stencil %s: %w", patternID, err)
		}
		book.Discover(patternID, source)

		if overlayX != nil && overlayY != nil {
			at := model.Point{X: int(*overlayX), Y: int(*overlayY)}
			if err := book.Place(patternID, at); err != nil {
				return nil, fmt.Errorf("restoring overlay for %s: %w", patternID, err)
			}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stencil rows: %w", err)
	}

	return book, nil
}

// Save сохраняет все найденные трафареты персонажа (полная перезапись).
// Undiscovered stencils are not written.
func (r *StencilRepository) Save(ctx context.Context, charID int64, book *synergy.StencilBook) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after commit is expected to fail
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM character_stencils WHERE character_id = $1`, charID); err != nil {
		return fmt.Errorf("deleting existing stencils: %w", err)
	}

	for _, s := range book.Discovered() {
		var overlayX, overlayY *int32
		if at, ok := s.Overlay(); ok {
			x, y := int32(at.X), int32(at.Y)
			overlayX, overlayY = &x, &y
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO character_stencils (character_id, pattern_id, source, overlay_x, overlay_y)
			 VALUES ($1, $2, $3, $4, $5)`,
			charID, s.PatternID(), s.Source().String(), overlayX, overlayY,
		); err != nil {
			return fmt.Errorf("inserting stencil %s: %w", s.PatternID(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing stencils save: %w", err)
	}

	return nil
}

// MarkDiscovered записывает одно открытие. The first recorded source wins;
// returns true if the row was inserted.
func (r *StencilRepository) MarkDiscovered(ctx context.Context, charID int64, patternID string, source synergy.DiscoverySource) (bool, error) {
	if source == synergy.DiscoveryUnknown {
		return false, nil
	}

	query := `
		INSERT INTO character_stencils (character_id, pattern_id, source)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, pattern_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query, charID, patternID, source.String())
	if err != nil {
		return false, fmt.Errorf("recording stencil %s for character %d: %w", patternID, charID, err)
	}

	return tag.RowsAffected() == 1, nil
}
