package synergy

import (
	"log/slog"

	"github.com/udisondev/synergy/internal/model"
)

// Tracker прогоняет полный цикл: детекция → группировка → наложение эффектов.
//
// Every Refresh rebuilds the groups from a fresh grid snapshot; there is no
// incremental path. Points earned by a match are carried into the next pass
// only when a match with the same pattern and anchor is found again. Pattern
// progress toward its skill is kept for the lifetime of the Tracker and is
// never persisted.
//
// Not safe for concurrent use.
type Tracker struct {
	detector  *SynergyDetector
	character *model.Character
	stencils  *StencilBook
	order     OrderFunc

	groups   []*ActiveSynergyGroup
	applied  []Effect
	progress map[string]float64
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithOrder sets the candidate order used before greedy grouping.
func WithOrder(order OrderFunc) TrackerOption {
	return func(t *Tracker) { t.order = order }
}

// WithStencilBook makes Refresh mark matched patterns as discovered.
func WithStencilBook(book *StencilBook) TrackerOption {
	return func(t *Tracker) { t.stencils = book }
}

// NewTracker creates a tracker applying effects to character.
func NewTracker(detector *SynergyDetector, character *model.Character, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		detector:  detector,
		character: character,
		progress:  make(map[string]float64),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RefreshResult summarizes one detection pass.
type RefreshResult struct {
	Matches         int
	Groups          int
	Rejected        int
	AppliedEffects  int
	NewlyDiscovered []string
}

// Refresh removes every effect applied by the previous pass, re-detects on
// grid and applies each group's effects scaled by its TotalMultiplier.
func (t *Tracker) Refresh(grid model.Grid) RefreshResult {
	carried := make(map[InstanceKey]float64)
	for _, g := range t.groups {
		for _, inst := range g.instances {
			carried[inst.Key()] = inst.pointsEarned
		}
	}

	t.Release()

	matches := t.detector.Detect(grid)
	for _, m := range matches {
		if pts, ok := carried[m.Key()]; ok {
			m.AddPoints(pts)
		}
	}

	groups, rejected := GroupMatches(matches, t.order)
	t.groups = groups

	res := RefreshResult{
		Matches:  len(matches),
		Groups:   len(groups),
		Rejected: rejected,
	}

	for _, g := range groups {
		mult := g.TotalMultiplier()
		for _, e := range g.pattern.effects {
			scaled := e.Scale(mult)
			scaled.Apply(t.character)
			t.applied = append(t.applied, scaled)
		}

		if t.stencils != nil && t.stencils.Discover(g.pattern.id, DiscoveryPlayerMatch) {
			res.NewlyDiscovered = append(res.NewlyDiscovered, g.pattern.id)
		}

		slog.Debug("synergy group active",
			"character", t.character.ID,
			"pattern", g.pattern.id,
			"instances", g.InstanceCount(),
			"multiplier", mult)
	}
	res.AppliedEffects = len(t.applied)

	return res
}

// Release removes all applied effects in reverse order and drops the groups.
// Pattern progress is kept.
func (t *Tracker) Release() {
	for i := len(t.applied) - 1; i >= 0; i-- {
		t.applied[i].Remove(t.character)
	}
	t.applied = t.applied[:0]
	t.groups = nil
}

// AwardPoints grants base points to every active group, sped up by the
// acceleration multiplier while the pattern's skill is still locked.
// Each instance of a group and the pattern progress receive the same gain.
func (t *Tracker) AwardPoints(base float64) {
	if base <= 0 {
		return
	}
	for _, g := range t.groups {
		gain := base * GetPointsAccelerationMultiplier(g.InstanceCount(), t.skillLearned(g.pattern))
		for _, inst := range g.instances {
			inst.AddPoints(gain)
		}
		t.progress[g.pattern.id] += gain
	}
}

// Progress returns session progress of a pattern toward its skill.
func (t *Tracker) Progress(patternID string) float64 {
	return t.progress[patternID]
}

// ReadyToUnlock lists patterns, in registration order, whose progress reached
// SynergyPointsRequired and whose skill the character has not learned.
// Patterns that never earned points are not reported.
// Granting the skill is up to the caller; see MarkSkillLearned.
func (t *Tracker) ReadyToUnlock() []*SynergyPattern {
	var ready []*SynergyPattern
	for _, p := range t.detector.patterns {
		if !p.HasSkill() || t.skillLearned(p) {
			continue
		}
		if pts, ok := t.progress[p.id]; ok && pts >= p.pointsRequired {
			ready = append(ready, p)
		}
	}
	return ready
}

// MarkSkillLearned records the pattern's skill on the character, which stops
// point acceleration for it. Returns false for unknown or skill-less patterns.
func (t *Tracker) MarkSkillLearned(patternID string) bool {
	p, ok := t.detector.Pattern(patternID)
	if !ok || !p.HasSkill() {
		return false
	}
	t.character.LearnSkill(p.skill)
	slog.Info("synergy skill learned",
		"character", t.character.ID,
		"pattern", p.id,
		"skill", p.skill)
	return true
}

// Groups returns the groups built by the last Refresh.
func (t *Tracker) Groups() []*ActiveSynergyGroup {
	out := make([]*ActiveSynergyGroup, len(t.groups))
	copy(out, t.groups)
	return out
}

// Group returns the active group for patternID, if any.
func (t *Tracker) Group(patternID string) (*ActiveSynergyGroup, bool) {
	for _, g := range t.groups {
		if g.pattern.id == patternID {
			return g, true
		}
	}
	return nil, false
}

// AppliedEffects returns the scaled effects currently applied, in apply order.
func (t *Tracker) AppliedEffects() []Effect {
	out := make([]Effect, len(t.applied))
	copy(out, t.applied)
	return out
}

func (t *Tracker) skillLearned(p *SynergyPattern) bool {
	return p.HasSkill() && t.character.HasSkill(p.skill)
}
