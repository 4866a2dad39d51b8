package model

// Stats — четыре базовых характеристики персонажа.
type Stats struct {
	Strength int32
	Agility  int32
	Vitality int32
	Magic    int32
}

// Add returns s + o component-wise.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Strength: s.Strength + o.Strength,
		Agility:  s.Agility + o.Agility,
		Vitality: s.Vitality + o.Vitality,
		Magic:    s.Magic + o.Magic,
	}
}

// Sub returns s - o component-wise.
func (s Stats) Sub(o Stats) Stats {
	return Stats{
		Strength: s.Strength - o.Strength,
		Agility:  s.Agility - o.Agility,
		Vitality: s.Vitality - o.Vitality,
		Magic:    s.Magic - o.Magic,
	}
}

// IsZero reports whether every component is zero.
func (s Stats) IsZero() bool {
	return s == Stats{}
}

// GrowthRates — смещение прироста характеристик при повышении уровня.
// Values are additive deltas over the class baseline (0.1 = +10% growth).
type GrowthRates struct {
	Strength Fixed
	Agility  Fixed
	Vitality Fixed
	Magic    Fixed
}

// Add returns g + o component-wise.
func (g GrowthRates) Add(o GrowthRates) GrowthRates {
	return GrowthRates{
		Strength: g.Strength + o.Strength,
		Agility:  g.Agility + o.Agility,
		Vitality: g.Vitality + o.Vitality,
		Magic:    g.Magic + o.Magic,
	}
}

// Sub returns g - o component-wise.
func (g GrowthRates) Sub(o GrowthRates) GrowthRates {
	return GrowthRates{
		Strength: g.Strength - o.Strength,
		Agility:  g.Agility - o.Agility,
		Vitality: g.Vitality - o.Vitality,
		Magic:    g.Magic - o.Magic,
	}
}

// Character — изменяемая модель характеристик, на которую накладываются эффекты синергий.
//
// All bonus fields are additive: effects add on Apply and subtract the same
// amount on Remove. Fractional bonuses are Fixed, so the pair restores the
// field exactly. Not safe for concurrent use; callers serialize Apply/Remove.
type Character struct {
	ID   int64
	Name string

	Stats Stats
	MaxHP int32
	MaxMP int32

	DefenseBonus         int32
	DeflectChance        Fixed // 0..1
	MPRegenPerTick       Fixed
	HealPowerMultiplier  Fixed // additive delta over 1.0
	FireDamageMultiplier Fixed // additive delta over 1.0

	MPCostReduction Fixed // percent, 0..100

	Growth GrowthRates

	counterGrantors int
	learnedSkills   map[string]struct{}
}

// NewCharacter создаёт персонажа с базовыми характеристиками.
func NewCharacter(id int64, name string, base Stats, maxHP, maxMP int32) *Character {
	return &Character{
		ID:            id,
		Name:          name,
		Stats:         base,
		MaxHP:         maxHP,
		MaxMP:         maxMP,
		learnedSkills: make(map[string]struct{}),
	}
}

// GrantCounter registers one more source of the counter-attack capability.
func (c *Character) GrantCounter() {
	c.counterGrantors++
}

// RevokeCounter releases one source. Extra revokes never drive the count below zero.
func (c *Character) RevokeCounter() {
	if c.counterGrantors > 0 {
		c.counterGrantors--
	}
}

// CanCounter reports whether at least one active source grants counter-attack.
func (c *Character) CanCounter() bool {
	return c.counterGrantors > 0
}

// CounterGrantors returns the number of active counter-attack sources.
func (c *Character) CounterGrantors() int {
	return c.counterGrantors
}

// LearnSkill records an unlocked skill.
func (c *Character) LearnSkill(skill string) {
	if skill == "" {
		return
	}
	if c.learnedSkills == nil {
		c.learnedSkills = make(map[string]struct{})
	}
	c.learnedSkills[skill] = struct{}{}
}

// HasSkill reports whether skill was learned.
func (c *Character) HasSkill(skill string) bool {
	_, ok := c.learnedSkills[skill]
	return ok
}

// CharacterSnapshot — сравнимая копия всех числовых полей персонажа.
type CharacterSnapshot struct {
	Stats                Stats
	MaxHP                int32
	MaxMP                int32
	DefenseBonus         int32
	DeflectChance        Fixed
	MPRegenPerTick       Fixed
	HealPowerMultiplier  Fixed
	FireDamageMultiplier Fixed
	MPCostReduction      Fixed
	Growth               GrowthRates
	CounterGrantors      int
}

// Snapshot captures the current numeric state.
func (c *Character) Snapshot() CharacterSnapshot {
	return CharacterSnapshot{
		Stats:                c.Stats,
		MaxHP:                c.MaxHP,
		MaxMP:                c.MaxMP,
		DefenseBonus:         c.DefenseBonus,
		DeflectChance:        c.DeflectChance,
		MPRegenPerTick:       c.MPRegenPerTick,
		HealPowerMultiplier:  c.HealPowerMultiplier,
		FireDamageMultiplier: c.FireDamageMultiplier,
		MPCostReduction:      c.MPCostReduction,
		Growth:               c.Growth,
		CounterGrantors:      c.counterGrantors,
	}
}
