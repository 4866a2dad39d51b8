package synergy

import (
	"fmt"

	"github.com/udisondev/synergy/internal/model"
)

// GrowthModifierEffect biases future level-up gains.
// Params: "str", "agi", "vit", "mag" (float rate deltas, 0.1 = +10%).
//
// Apply only records the bias on Character.Growth; nothing reads it yet.
type GrowthModifierEffect struct {
	Strength float64
	Agility  float64
	Vitality float64
	Magic    float64
}

func NewGrowthModifierEffect(params map[string]string) Effect {
	return &GrowthModifierEffect{
		Strength: paramFloat(params, "str"),
		Agility:  paramFloat(params, "agi"),
		Vitality: paramFloat(params, "vit"),
		Magic:    paramFloat(params, "mag"),
	}
}

func (e *GrowthModifierEffect) Name() string { return "GrowthModifier" }

// Rates returns the bias in the character's fixed-point form.
func (e *GrowthModifierEffect) Rates() model.GrowthRates {
	return model.GrowthRates{
		Strength: model.ToFixed(e.Strength),
		Agility:  model.ToFixed(e.Agility),
		Vitality: model.ToFixed(e.Vitality),
		Magic:    model.ToFixed(e.Magic),
	}
}

func (e *GrowthModifierEffect) Apply(c *model.Character) {
	c.Growth = c.Growth.Add(e.Rates())
}

func (e *GrowthModifierEffect) Remove(c *model.Character) {
	c.Growth = c.Growth.Sub(e.Rates())
}

func (e *GrowthModifierEffect) Scale(m float64) Effect {
	return &GrowthModifierEffect{
		Strength: e.Strength * m,
		Agility:  e.Agility * m,
		Vitality: e.Vitality * m,
		Magic:    e.Magic * m,
	}
}

func (e *GrowthModifierEffect) Describe() string {
	return fmt.Sprintf("GrowthModifier(STR%+.2f AGI%+.2f VIT%+.2f MAG%+.2f)", e.Strength, e.Agility, e.Vitality, e.Magic)
}
