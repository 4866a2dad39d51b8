package synergy

import (
	"fmt"
	"strings"

	"github.com/udisondev/synergy/internal/model"
)

// PassiveAbilityEffect grants always-on combat traits while the pattern is active.
// Params: "defense" (int), "deflect" (0..1), "counter" (bool), "mp_regen",
// "heal_power", "fire_damage" (float).
//
// Counter-attack is a reference-counted capability on the character: each
// applied effect holds one grant, so Remove releases exactly what Apply took.
type PassiveAbilityEffect struct {
	Defense       int32
	DeflectChance float64
	EnableCounter bool
	MPRegen       float64
	HealPower     float64
	FireDamage    float64
}

func NewPassiveAbilityEffect(params map[string]string) Effect {
	return &PassiveAbilityEffect{
		Defense:       paramInt32(params, "defense"),
		DeflectChance: paramFloat(params, "deflect"),
		EnableCounter: paramBool(params, "counter"),
		MPRegen:       paramFloat(params, "mp_regen"),
		HealPower:     paramFloat(params, "heal_power"),
		FireDamage:    paramFloat(params, "fire_damage"),
	}
}

func (e *PassiveAbilityEffect) Name() string { return "PassiveAbility" }

func (e *PassiveAbilityEffect) Apply(c *model.Character) {
	c.DefenseBonus += e.Defense
	c.DeflectChance += model.ToFixed(e.DeflectChance)
	c.MPRegenPerTick += model.ToFixed(e.MPRegen)
	c.HealPowerMultiplier += model.ToFixed(e.HealPower)
	c.FireDamageMultiplier += model.ToFixed(e.FireDamage)
	if e.EnableCounter {
		c.GrantCounter()
	}
}

func (e *PassiveAbilityEffect) Remove(c *model.Character) {
	c.DefenseBonus -= e.Defense
	c.DeflectChance -= model.ToFixed(e.DeflectChance)
	c.MPRegenPerTick -= model.ToFixed(e.MPRegen)
	c.HealPowerMultiplier -= model.ToFixed(e.HealPower)
	c.FireDamageMultiplier -= model.ToFixed(e.FireDamage)
	if e.EnableCounter {
		c.RevokeCounter()
	}
}

func (e *PassiveAbilityEffect) Scale(m float64) Effect {
	return &PassiveAbilityEffect{
		Defense:       scaleInt32(e.Defense, m),
		DeflectChance: e.DeflectChance * m,
		EnableCounter: e.EnableCounter,
		MPRegen:       e.MPRegen * m,
		HealPower:     e.HealPower * m,
		FireDamage:    e.FireDamage * m,
	}
}

func (e *PassiveAbilityEffect) Describe() string {
	var parts []string
	if e.Defense != 0 {
		parts = append(parts, fmt.Sprintf("DEF%+d", e.Defense))
	}
	if e.DeflectChance != 0 {
		parts = append(parts, fmt.Sprintf("deflect%+.0f%%", e.DeflectChance*100))
	}
	if e.EnableCounter {
		parts = append(parts, "counter")
	}
	if e.MPRegen != 0 {
		parts = append(parts, fmt.Sprintf("mpRegen%+.2f", e.MPRegen))
	}
	if e.HealPower != 0 {
		parts = append(parts, fmt.Sprintf("heal×%+.2f", e.HealPower))
	}
	if e.FireDamage != 0 {
		parts = append(parts, fmt.Sprintf("fire×%+.2f", e.FireDamage))
	}
	if len(parts) == 0 {
		return "PassiveAbility(none)"
	}
	return "PassiveAbility(" + strings.Join(parts, " ") + ")"
}
