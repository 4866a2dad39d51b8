package synergy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/synergy/internal/model"
)

func TestActiveSynergy_Points(t *testing.T) {
	inst := NewActiveSynergy(linePattern(t, "pair", 2, model.CategoryRing), model.Point{})

	inst.AddPoints(5)
	inst.AddPoints(-3)
	inst.AddPoints(0)
	inst.AddPoints(math.NaN())
	inst.AddPoints(math.Inf(1))
	inst.AddPoints(2.5)

	assert.Equal(t, 7.5, inst.PointsEarned())
}

func TestActiveSynergy_Overlaps(t *testing.T) {
	p := linePattern(t, "pair", 2, model.CategoryRing)
	a := NewActiveSynergy(p, model.Point{X: 0})
	b := NewActiveSynergy(p, model.Point{X: 1})
	c := NewActiveSynergy(p, model.Point{X: 2})

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(c))
	assert.False(t, a.Overlaps(c))
	assert.True(t, a.Occupies(model.Point{X: 1}))
	assert.False(t, a.Occupies(model.Point{X: 2}))
}

func TestGroup_TwoDisjointThenOverlap(t *testing.T) {
	p := linePattern(t, "pair", 2, model.CategoryAccessory)
	d := mustDetector(t, p)
	grid := gridFromRows(t, "AA.AA...")

	matches := d.DetectSynergies(grid, 8, 1)
	require.Len(t, matches, 2)

	g := NewActiveSynergyGroup(p)
	require.True(t, g.TryAddInstance(matches[0]))
	require.True(t, g.TryAddInstance(matches[1]))
	assert.Equal(t, 2, g.InstanceCount())
	assert.Equal(t, 1.5, g.TotalMultiplier())

	overlapping := NewActiveSynergy(p, model.Point{X: 1})
	assert.False(t, g.TryAddInstance(overlapping))
	assert.Equal(t, 2, g.InstanceCount())
	assert.Equal(t, 1.5, g.TotalMultiplier())
}

func TestGroup_CapIsMonotonic(t *testing.T) {
	p := linePattern(t, "pair", 2, model.CategoryRing)
	g := NewActiveSynergyGroup(p)

	for i := 0; i < MaxInstancesPerPattern; i++ {
		require.True(t, g.TryAddInstance(NewActiveSynergy(p, model.Point{X: i * 2})))
	}
	require.Equal(t, MaxInstancesPerPattern, g.InstanceCount())
	assert.Equal(t, 1.75, g.TotalMultiplier())

	for i := MaxInstancesPerPattern; i < MaxInstancesPerPattern+5; i++ {
		assert.False(t, g.TryAddInstance(NewActiveSynergy(p, model.Point{X: i * 2})), "disjoint instance %d past cap", i)
		assert.Equal(t, MaxInstancesPerPattern, g.InstanceCount())
	}
}

func TestGroup_RejectsForeignPatternAndNil(t *testing.T) {
	p := linePattern(t, "pair", 2, model.CategoryRing)
	other := linePattern(t, "other", 2, model.CategoryRing)
	g := NewActiveSynergyGroup(p)

	assert.False(t, g.TryAddInstance(nil))
	assert.False(t, g.TryAddInstance(NewActiveSynergy(other, model.Point{})))
	assert.Zero(t, g.InstanceCount())
	assert.Zero(t, g.TotalMultiplier())
}

func TestGroup_ClearAllowsReuse(t *testing.T) {
	p := linePattern(t, "pair", 2, model.CategoryRing)
	g := NewActiveSynergyGroup(p)
	require.True(t, g.TryAddInstance(NewActiveSynergy(p, model.Point{})))

	g.Clear()
	assert.Zero(t, g.InstanceCount())
	assert.True(t, g.TryAddInstance(NewActiveSynergy(p, model.Point{})), "cells are free again after Clear")
}

func TestGroup_TotalPoints(t *testing.T) {
	p := linePattern(t, "pair", 2, model.CategoryRing)
	g := NewActiveSynergyGroup(p)
	a := NewActiveSynergy(p, model.Point{X: 0})
	b := NewActiveSynergy(p, model.Point{X: 2})
	a.AddPoints(3)
	b.AddPoints(4)
	require.True(t, g.TryAddInstance(a))
	require.True(t, g.TryAddInstance(b))

	assert.Equal(t, 7.0, g.TotalPoints())
}

func TestGroupMatches_FirstFitInScanOrder(t *testing.T) {
	d := mustDetector(t,
		linePattern(t, "gems", 2, model.CategoryGem),
		linePattern(t, "rings", 2, model.CategoryRing),
	)
	// GGG yields anchors 0 and 1 (overlapping); scan order keeps anchor 0
	grid := gridFromRows(t, "GGG.RR")

	groups, rejected := GroupMatches(d.Detect(grid), nil)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, rejected)

	assert.Equal(t, "gems", groups[0].Pattern().ID())
	require.Equal(t, 1, groups[0].InstanceCount())
	assert.Equal(t, model.Point{X: 0}, groups[0].Instances()[0].Anchor())
	assert.Equal(t, "rings", groups[1].Pattern().ID())
}

func TestGroupMatches_CustomOrder(t *testing.T) {
	d := mustDetector(t, linePattern(t, "gems", 2, model.CategoryGem))
	matches := d.Detect(gridFromRows(t, "GGG"))
	require.Len(t, matches, 2)
	matches[1].AddPoints(10)

	groups, rejected := GroupMatches(matches, PreferEarnedPoints)
	require.Len(t, groups, 1)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, model.Point{X: 1}, groups[0].Instances()[0].Anchor())

	// input slice order is untouched
	assert.Equal(t, model.Point{X: 0}, matches[0].Anchor())
}
