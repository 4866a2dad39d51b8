package synergy

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/synergy/internal/model"
)

// SynergyDetector — каталог паттернов и поиск их совпадений на сетке.
//
// Scan order is fixed: patterns in registration order, then anchors row by
// row (y outer, x inner). Grouping relies on this order for tie-breaking.
//
// Register is not safe to call concurrently with detection.
type SynergyDetector struct {
	patterns []*SynergyPattern
	byID     map[string]*SynergyPattern
}

// NewSynergyDetector creates a detector with the given patterns registered in order.
func NewSynergyDetector(patterns ...*SynergyPattern) (*SynergyDetector, error) {
	d := &SynergyDetector{
		patterns: make([]*SynergyPattern, 0, len(patterns)),
		byID:     make(map[string]*SynergyPattern, len(patterns)),
	}
	for _, p := range patterns {
		if err := d.Register(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Register appends a pattern to the catalog. Duplicate ids are rejected.
func (d *SynergyDetector) Register(p *SynergyPattern) error {
	if p == nil {
		return ErrNilPattern
	}
	if _, exists := d.byID[p.id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePattern, p.id)
	}
	d.patterns = append(d.patterns, p)
	d.byID[p.id] = p
	return nil
}

// Pattern looks up a registered pattern by id.
func (d *SynergyDetector) Pattern(id string) (*SynergyPattern, bool) {
	p, ok := d.byID[id]
	return p, ok
}

// Patterns returns registered patterns in registration order.
func (d *SynergyDetector) Patterns() []*SynergyPattern {
	out := make([]*SynergyPattern, len(d.patterns))
	copy(out, d.patterns)
	return out
}

// Len returns the number of registered patterns.
func (d *SynergyDetector) Len() int {
	return len(d.patterns)
}

// Detect runs DetectSynergies over the full extent of grid.
func (d *SynergyDetector) Detect(grid model.Grid) []*ActiveSynergy {
	return d.DetectSynergies(grid, grid.Width(), grid.Height())
}

// DetectSynergies returns every match of every registered pattern at every
// anchor in [0,width)×[0,height). Overlapping matches, including two of the
// same pattern, are all returned; resolving them is the group's job.
//
// grid must not change during the call.
func (d *SynergyDetector) DetectSynergies(grid model.Grid, width, height int) []*ActiveSynergy {
	if grid == nil || width <= 0 || height <= 0 || len(d.patterns) == 0 {
		return nil
	}

	counts := countCategories(grid, width, height)

	var matches []*ActiveSynergy
	for _, p := range d.patterns {
		if !p.fitsCounts(counts) {
			continue
		}

		// anchors outside this window put some slot off-grid
		x0, x1 := max(0, -p.minDX), min(width, width-p.maxDX)
		y0, y1 := max(0, -p.minDY), min(height, height-p.maxDY)

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				anchor := model.Point{X: x, Y: y}
				if matchAt(grid, width, height, p, anchor) {
					matches = append(matches, NewActiveSynergy(p, anchor))
				}
			}
		}
	}

	slog.Debug("synergy detection finished",
		"patterns", len(d.patterns),
		"width", width,
		"height", height,
		"matches", len(matches))

	return matches
}

// matchAt checks every slot of p anchored at anchor, stopping at the first miss.
func matchAt(grid model.Grid, width, height int, p *SynergyPattern, anchor model.Point) bool {
	for _, s := range p.slots {
		cell := anchor.Add(s.Offset)
		if !cell.In(width, height) {
			return false
		}
		item := grid.ItemAt(cell)
		if item == nil || item.Category != s.Category {
			return false
		}
	}
	return true
}

// countCategories counts items inside [0,width)×[0,height). A grid that can
// count itself is asked directly when the scan covers all of it.
func countCategories(grid model.Grid, width, height int) map[model.ItemCategory]int {
	if cc, ok := grid.(model.CategoryCounter); ok && width >= grid.Width() && height >= grid.Height() {
		return cc.CountByCategory()
	}

	counts := make(map[model.ItemCategory]int, 8)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if item := grid.ItemAt(model.Point{X: x, Y: y}); item != nil {
				counts[item.Category]++
			}
		}
	}
	return counts
}
