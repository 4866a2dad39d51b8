package synergy

import (
	"fmt"
	"strings"

	"github.com/udisondev/synergy/internal/model"
)

// SkillModifierEffect adjusts skill costs and reach.
// Params: "skill" (target filter), "mp_cost_flat" (int), "mp_cost_percent"
// (float, 0..100), "range" (int), "power" (float factor, 1 = neutral).
//
// Only the global percentage MP-cost reduction is written to the character.
// The remaining fields, and any targeted modifier, are read by skill execution
// through AppliesTo and the exported fields.
type SkillModifierEffect struct {
	TargetSkill     string
	MPCostFlat      int32
	MPCostPercent   float64
	RangeIncrease   int32
	PowerMultiplier float64
}

func NewSkillModifierEffect(params map[string]string) Effect {
	power := 1.0
	if _, ok := params["power"]; ok {
		power = paramFloat(params, "power")
	}
	return &SkillModifierEffect{
		TargetSkill:     strings.TrimSpace(params["skill"]),
		MPCostFlat:      paramInt32(params, "mp_cost_flat"),
		MPCostPercent:   paramFloat(params, "mp_cost_percent"),
		RangeIncrease:   paramInt32(params, "range"),
		PowerMultiplier: power,
	}
}

func (e *SkillModifierEffect) Name() string { return "SkillModifier" }

// IsGlobal reports whether the modifier applies to every skill.
func (e *SkillModifierEffect) IsGlobal() bool { return e.TargetSkill == "" }

// AppliesTo reports whether the modifier affects the given skill.
func (e *SkillModifierEffect) AppliesTo(skill string) bool {
	return e.IsGlobal() || strings.EqualFold(e.TargetSkill, skill)
}

func (e *SkillModifierEffect) Apply(c *model.Character) {
	if e.IsGlobal() {
		c.MPCostReduction += model.ToFixed(e.MPCostPercent)
	}
}

func (e *SkillModifierEffect) Remove(c *model.Character) {
	if e.IsGlobal() {
		c.MPCostReduction -= model.ToFixed(e.MPCostPercent)
	}
}

func (e *SkillModifierEffect) Scale(m float64) Effect {
	return &SkillModifierEffect{
		TargetSkill:     e.TargetSkill,
		MPCostFlat:      scaleInt32(e.MPCostFlat, m),
		MPCostPercent:   e.MPCostPercent * m,
		RangeIncrease:   scaleInt32(e.RangeIncrease, m),
		PowerMultiplier: 1 + (e.PowerMultiplier-1)*m,
	}
}

func (e *SkillModifierEffect) Describe() string {
	var parts []string
	if e.MPCostPercent != 0 {
		parts = append(parts, fmt.Sprintf("mpCost-%.1f%%", e.MPCostPercent))
	}
	if e.MPCostFlat != 0 {
		parts = append(parts, fmt.Sprintf("mpCost-%d", e.MPCostFlat))
	}
	if e.RangeIncrease != 0 {
		parts = append(parts, fmt.Sprintf("range%+d", e.RangeIncrease))
	}
	if e.PowerMultiplier != 1 {
		parts = append(parts, fmt.Sprintf("power×%.2f", e.PowerMultiplier))
	}
	target := "all"
	if !e.IsGlobal() {
		target = e.TargetSkill
	}
	return fmt.Sprintf("SkillModifier[%s](%s)", target, strings.Join(parts, " "))
}
