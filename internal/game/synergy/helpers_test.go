package synergy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/synergy/internal/model"
	"github.com/udisondev/synergy/internal/testutil"
)

// gridFromRows builds a snapshot from rows of letters; '.' is an empty cell.
func gridFromRows(t *testing.T, rows ...string) *model.GridSnapshot {
	t.Helper()
	return testutil.GridFromRows(t, rows...).Snapshot()
}

// linePattern is a horizontal run of n cells of one category.
func linePattern(t *testing.T, id string, n int, cat model.ItemCategory, effects ...Effect) *SynergyPattern {
	t.Helper()
	slots := make([]PatternSlot, n)
	for i := range slots {
		slots[i] = PatternSlot{Offset: model.Offset{DX: i}, Category: cat}
	}
	p, err := NewPattern(PatternDef{ID: id, Slots: slots, Effects: effects})
	require.NoError(t, err)
	return p
}

func mustDetector(t *testing.T, patterns ...*SynergyPattern) *SynergyDetector {
	t.Helper()
	d, err := NewSynergyDetector(patterns...)
	require.NoError(t, err)
	return d
}

func newTestCharacter() *model.Character {
	return testutil.NewCharacter()
}
