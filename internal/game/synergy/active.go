package synergy

import (
	"log/slog"
	"math"

	"github.com/udisondev/synergy/internal/model"
)

// InstanceKey identifies a match by pattern and anchor across detection passes.
type InstanceKey struct {
	PatternID string
	Anchor    model.Point
}

// ActiveSynergy — одно конкретное совпадение паттерна на сетке.
// Cells are absolute and listed in pattern-slot order.
type ActiveSynergy struct {
	pattern      *SynergyPattern
	anchor       model.Point
	cells        []model.Point
	pointsEarned float64
}

// NewActiveSynergy anchors pattern at anchor. The grid is not consulted;
// use SynergyDetector to obtain verified matches.
func NewActiveSynergy(pattern *SynergyPattern, anchor model.Point) *ActiveSynergy {
	cells := make([]model.Point, len(pattern.slots))
	for i, s := range pattern.slots {
		cells[i] = anchor.Add(s.Offset)
	}
	return &ActiveSynergy{pattern: pattern, anchor: anchor, cells: cells}
}

func (a *ActiveSynergy) Pattern() *SynergyPattern { return a.pattern }
func (a *ActiveSynergy) Anchor() model.Point      { return a.anchor }
func (a *ActiveSynergy) PointsEarned() float64    { return a.pointsEarned }

// Key returns the (pattern, anchor) identity of the match.
func (a *ActiveSynergy) Key() InstanceKey {
	return InstanceKey{PatternID: a.pattern.id, Anchor: a.anchor}
}

// Cells returns a copy of the occupied cells.
func (a *ActiveSynergy) Cells() []model.Point {
	out := make([]model.Point, len(a.cells))
	copy(out, a.cells)
	return out
}

// Occupies reports whether the match covers p.
func (a *ActiveSynergy) Occupies(p model.Point) bool {
	for _, c := range a.cells {
		if c == p {
			return true
		}
	}
	return false
}

// Overlaps reports whether a and other share at least one cell.
func (a *ActiveSynergy) Overlaps(other *ActiveSynergy) bool {
	for _, c := range other.cells {
		if a.Occupies(c) {
			return true
		}
	}
	return false
}

// AddPoints accrues synergy points. Points never decrease: non-positive
// and non-finite amounts are ignored.
func (a *ActiveSynergy) AddPoints(amount float64) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return
	}
	a.pointsEarned += amount
}

// ActiveSynergyGroup — все непересекающиеся копии одного паттерна.
//
// Acceptance is greedy first-fit in call order: a candidate is rejected when
// the group is full or when it shares a cell with an accepted instance.
type ActiveSynergyGroup struct {
	pattern   *SynergyPattern
	instances []*ActiveSynergy
	occupied  map[model.Point]struct{}
}

// NewActiveSynergyGroup creates an empty group for pattern.
func NewActiveSynergyGroup(pattern *SynergyPattern) *ActiveSynergyGroup {
	return &ActiveSynergyGroup{
		pattern:   pattern,
		instances: make([]*ActiveSynergy, 0, MaxInstancesPerPattern),
		occupied:  make(map[model.Point]struct{}, MaxInstancesPerPattern*pattern.Size()),
	}
}

func (g *ActiveSynergyGroup) Pattern() *SynergyPattern { return g.pattern }

// TryAddInstance accepts inst if the group has room and inst is cell-disjoint
// from every accepted instance. Returns false without mutating otherwise.
func (g *ActiveSynergyGroup) TryAddInstance(inst *ActiveSynergy) bool {
	if inst == nil || inst.pattern.id != g.pattern.id {
		return false
	}
	if len(g.instances) >= MaxInstancesPerPattern {
		slog.Debug("synergy instance rejected: cap reached",
			"pattern", g.pattern.id,
			"anchor", inst.anchor)
		return false
	}
	for _, c := range inst.cells {
		if _, taken := g.occupied[c]; taken {
			slog.Debug("synergy instance rejected: overlap",
				"pattern", g.pattern.id,
				"anchor", inst.anchor,
				"cell", c)
			return false
		}
	}

	for _, c := range inst.cells {
		g.occupied[c] = struct{}{}
	}
	g.instances = append(g.instances, inst)
	return true
}

// Clear drops all instances.
func (g *ActiveSynergyGroup) Clear() {
	g.instances = g.instances[:0]
	clear(g.occupied)
}

// InstanceCount returns the number of accepted instances.
func (g *ActiveSynergyGroup) InstanceCount() int {
	return len(g.instances)
}

// Instances returns a copy of the accepted instances in acceptance order.
func (g *ActiveSynergyGroup) Instances() []*ActiveSynergy {
	out := make([]*ActiveSynergy, len(g.instances))
	copy(out, g.instances)
	return out
}

// TotalMultiplier returns the pooled diminishing-returns multiplier.
func (g *ActiveSynergyGroup) TotalMultiplier() float64 {
	return GetTotalMultiplier(len(g.instances))
}

// TotalPoints sums points earned by all instances.
func (g *ActiveSynergyGroup) TotalPoints() float64 {
	total := 0.0
	for _, inst := range g.instances {
		total += inst.pointsEarned
	}
	return total
}
