package synergy

import (
	"errors"
	"fmt"

	"github.com/udisondev/synergy/internal/model"
)

var (
	ErrPatternIDEmpty   = errors.New("pattern id is empty")
	ErrSlotsEmpty       = errors.New("pattern has no slots")
	ErrSlotsMismatch    = errors.New("offsets and categories length mismatch")
	ErrDuplicateOffset  = errors.New("pattern repeats an offset")
	ErrInvalidCategory  = errors.New("slot requires no category")
	ErrDuplicatePattern = errors.New("pattern already registered")
	ErrNilPattern       = errors.New("pattern is nil")
)

// PatternSlot — одна ячейка формы: смещение от якоря и требуемая категория.
type PatternSlot struct {
	Offset   model.Offset
	Category model.ItemCategory
}

// PatternDef is the construction input for NewPattern.
type PatternDef struct {
	ID          string
	Name        string
	Description string
	Slots       []PatternSlot
	Effects     []Effect

	// SynergyPointsRequired is the progress needed before UnlockedSkill may be granted.
	SynergyPointsRequired float64
	UnlockedSkill         string
}

// SynergyPattern — неизменяемое описание синергии: форма, требования, эффекты.
// Built only through NewPattern, so every pattern satisfies the slot invariants.
type SynergyPattern struct {
	id          string
	name        string
	description string
	slots       []PatternSlot
	effects     []Effect

	pointsRequired float64
	skill          string

	// bounding box of offsets, used to skip anchors where the shape cannot fit
	minDX, minDY int
	maxDX, maxDY int

	need map[model.ItemCategory]int
}

// NewPattern validates def and builds an immutable pattern.
// Rejects empty ids, empty shapes, CategoryNone slots and repeated offsets.
func NewPattern(def PatternDef) (*SynergyPattern, error) {
	if def.ID == "" {
		return nil, ErrPatternIDEmpty
	}
	if len(def.Slots) == 0 {
		return nil, fmt.Errorf("pattern %q: %w", def.ID, ErrSlotsEmpty)
	}

	p := &SynergyPattern{
		id:             def.ID,
		name:           def.Name,
		description:    def.Description,
		slots:          make([]PatternSlot, len(def.Slots)),
		effects:        make([]Effect, 0, len(def.Effects)),
		pointsRequired: def.SynergyPointsRequired,
		skill:          def.UnlockedSkill,
		need:           make(map[model.ItemCategory]int, 4),
	}
	copy(p.slots, def.Slots)
	for _, e := range def.Effects {
		if e != nil {
			p.effects = append(p.effects, e)
		}
	}
	if p.name == "" {
		p.name = p.id
	}

	seen := make(map[model.Offset]struct{}, len(p.slots))
	for i, s := range p.slots {
		if s.Category == model.CategoryNone {
			return nil, fmt.Errorf("pattern %q slot %d: %w", def.ID, i, ErrInvalidCategory)
		}
		if _, dup := seen[s.Offset]; dup {
			return nil, fmt.Errorf("pattern %q offset %s: %w", def.ID, s.Offset, ErrDuplicateOffset)
		}
		seen[s.Offset] = struct{}{}
		p.need[s.Category]++

		if i == 0 || s.Offset.DX < p.minDX {
			p.minDX = s.Offset.DX
		}
		if i == 0 || s.Offset.DY < p.minDY {
			p.minDY = s.Offset.DY
		}
		if i == 0 || s.Offset.DX > p.maxDX {
			p.maxDX = s.Offset.DX
		}
		if i == 0 || s.Offset.DY > p.maxDY {
			p.maxDY = s.Offset.DY
		}
	}

	return p, nil
}

// ZipSlots pairs parallel offset and category lists into slots.
// A length mismatch is a data error and is reported instead of truncated.
func ZipSlots(offsets []model.Offset, categories []model.ItemCategory) ([]PatternSlot, error) {
	if len(offsets) != len(categories) {
		return nil, fmt.Errorf("%w: %d offsets, %d categories", ErrSlotsMismatch, len(offsets), len(categories))
	}
	slots := make([]PatternSlot, len(offsets))
	for i := range offsets {
		slots[i] = PatternSlot{Offset: offsets[i], Category: categories[i]}
	}
	return slots, nil
}

func (p *SynergyPattern) ID() string          { return p.id }
func (p *SynergyPattern) Name() string        { return p.name }
func (p *SynergyPattern) Description() string { return p.description }

// Size returns the number of cells the shape occupies.
func (p *SynergyPattern) Size() int { return len(p.slots) }

// Slots returns a copy of the shape in definition order.
func (p *SynergyPattern) Slots() []PatternSlot {
	out := make([]PatternSlot, len(p.slots))
	copy(out, p.slots)
	return out
}

// Offsets returns the shape offsets in definition order.
func (p *SynergyPattern) Offsets() []model.Offset {
	out := make([]model.Offset, len(p.slots))
	for i, s := range p.slots {
		out[i] = s.Offset
	}
	return out
}

// RequiredCategories returns the category for each offset, parallel to Offsets.
func (p *SynergyPattern) RequiredCategories() []model.ItemCategory {
	out := make([]model.ItemCategory, len(p.slots))
	for i, s := range p.slots {
		out[i] = s.Category
	}
	return out
}

// Effects returns a copy of the effect list.
func (p *SynergyPattern) Effects() []Effect {
	out := make([]Effect, len(p.effects))
	copy(out, p.effects)
	return out
}

func (p *SynergyPattern) SynergyPointsRequired() float64 { return p.pointsRequired }
func (p *SynergyPattern) UnlockedSkill() string          { return p.skill }

// HasSkill reports whether the pattern unlocks a skill at all.
func (p *SynergyPattern) HasSkill() bool { return p.skill != "" }

// Bounds returns the min and max offsets of the shape.
func (p *SynergyPattern) Bounds() (lo, hi model.Offset) {
	return model.Offset{DX: p.minDX, DY: p.minDY}, model.Offset{DX: p.maxDX, DY: p.maxDY}
}

// fitsCounts reports whether counts holds at least as many cells of each
// category as the shape requires.
func (p *SynergyPattern) fitsCounts(counts map[model.ItemCategory]int) bool {
	for cat, n := range p.need {
		if counts[cat] < n {
			return false
		}
	}
	return true
}
