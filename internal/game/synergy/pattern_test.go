package synergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/synergy/internal/model"
)

func TestNewPattern_Validation(t *testing.T) {
	ring := model.CategoryRing
	tests := []struct {
		name    string
		def     PatternDef
		wantErr error
	}{
		{
			name:    "empty id",
			def:     PatternDef{Slots: []PatternSlot{{Category: ring}}},
			wantErr: ErrPatternIDEmpty,
		},
		{
			name:    "no slots",
			def:     PatternDef{ID: "p"},
			wantErr: ErrSlotsEmpty,
		},
		{
			name: "none category",
			def: PatternDef{ID: "p", Slots: []PatternSlot{
				{Offset: model.Offset{}, Category: model.CategoryNone},
			}},
			wantErr: ErrInvalidCategory,
		},
		{
			name: "duplicate offset",
			def: PatternDef{ID: "p", Slots: []PatternSlot{
				{Offset: model.Offset{DX: 1}, Category: ring},
				{Offset: model.Offset{DX: 1}, Category: ring},
			}},
			wantErr: ErrDuplicateOffset,
		},
		{
			name: "valid",
			def: PatternDef{ID: "p", Slots: []PatternSlot{
				{Offset: model.Offset{}, Category: ring},
				{Offset: model.Offset{DY: 1}, Category: ring},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPattern(tt.def)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.def.Slots), p.Size())
		})
	}
}

func TestZipSlots(t *testing.T) {
	offsets := []model.Offset{{DX: 0}, {DX: 1}}

	_, err := ZipSlots(offsets, []model.ItemCategory{model.CategoryGem})
	assert.ErrorIs(t, err, ErrSlotsMismatch)

	slots, err := ZipSlots(offsets, []model.ItemCategory{model.CategoryGem, model.CategoryRing})
	require.NoError(t, err)
	assert.Equal(t, []PatternSlot{
		{Offset: model.Offset{DX: 0}, Category: model.CategoryGem},
		{Offset: model.Offset{DX: 1}, Category: model.CategoryRing},
	}, slots)
}

func TestPattern_Accessors(t *testing.T) {
	def := PatternDef{
		ID:          "cross",
		Description: "plus sign",
		Slots: []PatternSlot{
			{Offset: model.Offset{DX: 0, DY: -1}, Category: model.CategoryGem},
			{Offset: model.Offset{DX: -1, DY: 0}, Category: model.CategoryGem},
			{Offset: model.Offset{DX: 0, DY: 0}, Category: model.CategoryRelic},
			{Offset: model.Offset{DX: 1, DY: 0}, Category: model.CategoryGem},
			{Offset: model.Offset{DX: 0, DY: 1}, Category: model.CategoryGem},
		},
		SynergyPointsRequired: 50,
		UnlockedSkill:         "Prism",
	}
	p, err := NewPattern(def)
	require.NoError(t, err)

	assert.Equal(t, "cross", p.Name(), "name defaults to id")
	assert.Equal(t, 5, p.Size())
	assert.Len(t, p.Offsets(), len(p.RequiredCategories()))
	assert.Equal(t, model.CategoryRelic, p.RequiredCategories()[2])
	assert.True(t, p.HasSkill())
	assert.Equal(t, 50.0, p.SynergyPointsRequired())

	lo, hi := p.Bounds()
	assert.Equal(t, model.Offset{DX: -1, DY: -1}, lo)
	assert.Equal(t, model.Offset{DX: 1, DY: 1}, hi)

	// mutating the definition after construction must not leak in
	def.Slots[0].Category = model.CategoryWeapon
	assert.Equal(t, model.CategoryGem, p.Slots()[0].Category)
}
