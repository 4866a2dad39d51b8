package data

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/synergy/internal/game/synergy"
	"github.com/udisondev/synergy/internal/model"
)

//go:embed catalog/*.yaml
var defaultCatalog embed.FS

var ErrMixedShape = errors.New("pattern sets both slots and offsets/categories")

// --- YAML structures (synergy catalog) ---

type catalogDoc struct {
	Patterns []patternEntry `yaml:"patterns"`
}

type patternEntry struct {
	ID             string        `yaml:"id"`
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description"`
	PointsRequired float64       `yaml:"points_required"`
	Skill          string        `yaml:"skill"`
	Slots          []slotEntry   `yaml:"slots"`
	Effects        []effectEntry `yaml:"effects"`

	// legacy parallel-list shape
	Offsets    [][2]int `yaml:"offsets"`
	Categories []string `yaml:"categories"`
}

type slotEntry struct {
	DX       int    `yaml:"dx"`
	DY       int    `yaml:"dy"`
	Category string `yaml:"category"`
}

type effectEntry struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params"`
}

// ParsePatterns decodes one catalog document into validated patterns.
// Any invalid entry fails the whole document.
func ParsePatterns(raw []byte) ([]*synergy.SynergyPattern, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	out := make([]*synergy.SynergyPattern, 0, len(doc.Patterns))
	for i, e := range doc.Patterns {
		p, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("pattern #%d (%s): %w", i, e.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (e patternEntry) build() (*synergy.SynergyPattern, error) {
	slots, err := e.slots()
	if err != nil {
		return nil, err
	}

	effects := make([]synergy.Effect, 0, len(e.Effects))
	for _, fx := range e.Effects {
		params := make(map[string]string, len(fx.Params))
		for k, v := range fx.Params {
			params[k] = fmt.Sprint(v)
		}
		eff, err := synergy.CreateEffect(fx.Type, params)
		if err != nil {
			return nil, err
		}
		effects = append(effects, eff)
	}

	return synergy.NewPattern(synergy.PatternDef{
		ID:                    e.ID,
		Name:                  e.Name,
		Description:           e.Description,
		Slots:                 slots,
		Effects:               effects,
		SynergyPointsRequired: e.PointsRequired,
		UnlockedSkill:         e.Skill,
	})
}

func (e patternEntry) slots() ([]synergy.PatternSlot, error) {
	legacy := len(e.Offsets) > 0 || len(e.Categories) > 0
	if legacy && len(e.Slots) > 0 {
		return nil, ErrMixedShape
	}

	if legacy {
		offsets := make([]model.Offset, len(e.Offsets))
		for i, o := range e.Offsets {
			offsets[i] = model.Offset{DX: o[0], DY: o[1]}
		}
		cats := make([]model.ItemCategory, len(e.Categories))
		for i, name := range e.Categories {
			c, err := model.ParseItemCategory(name)
			if err != nil {
				return nil, err
			}
			cats[i] = c
		}
		return synergy.ZipSlots(offsets, cats)
	}

	slots := make([]synergy.PatternSlot, len(e.Slots))
	for i, s := range e.Slots {
		c, err := model.ParseItemCategory(s.Category)
		if err != nil {
			return nil, err
		}
		slots[i] = synergy.PatternSlot{Offset: model.Offset{DX: s.DX, DY: s.DY}, Category: c}
	}
	return slots, nil
}

// LoadDefaultCatalog loads the catalog embedded in the binary.
func LoadDefaultCatalog(ctx context.Context) ([]*synergy.SynergyPattern, error) {
	sub, err := fs.Sub(defaultCatalog, "catalog")
	if err != nil {
		return nil, fmt.Errorf("opening embedded catalog: %w", err)
	}
	return LoadPatternFS(ctx, sub)
}

// LoadPatternDir loads every *.yaml file in dir.
func LoadPatternDir(ctx context.Context, dir string) ([]*synergy.SynergyPattern, error) {
	return LoadPatternFS(ctx, os.DirFS(dir))
}

// LoadPatternFS parses *.yaml files at the root of fsys in parallel.
// Patterns are returned in file-name order, then document order, so
// registration order (and overlap tie-breaking) does not depend on scheduling.
func LoadPatternFS(ctx context.Context, fsys fs.FS) ([]*synergy.SynergyPattern, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalog: %w", err)
	}
	sort.Strings(files)

	results := make([][]*synergy.SynergyPattern, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			patterns, err := ParsePatterns(raw)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path.Base(name), err)
			}
			results[i] = patterns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*synergy.SynergyPattern
	for _, r := range results {
		all = append(all, r...)
	}
	slog.Info("loaded synergy patterns", "files", len(files), "count", len(all))
	return all, nil
}

// NewDetector registers patterns in order into a fresh detector.
func NewDetector(patterns []*synergy.SynergyPattern) (*synergy.SynergyDetector, error) {
	d, err := synergy.NewSynergyDetector(patterns...)
	if err != nil {
		return nil, fmt.Errorf("building detector: %w", err)
	}
	return d, nil
}
