package synergy

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/udisondev/synergy/internal/model"
)

// StatBonusEffect adds flat base-stat and HP/MP deltas.
// Params: "str", "agi", "vit", "mag", "hp", "mp" (int), "percent" (bool).
type StatBonusEffect struct {
	Stats model.Stats
	HP    int32
	MP    int32

	// Percent is reserved for percentage-based bonuses. Only flat mode is
	// implemented; a percent-mode effect applies nothing.
	Percent bool
}

func NewStatBonusEffect(params map[string]string) Effect {
	return &StatBonusEffect{
		Stats: model.Stats{
			Strength: paramInt32(params, "str"),
			Agility:  paramInt32(params, "agi"),
			Vitality: paramInt32(params, "vit"),
			Magic:    paramInt32(params, "mag"),
		},
		HP:      paramInt32(params, "hp"),
		MP:      paramInt32(params, "mp"),
		Percent: paramBool(params, "percent"),
	}
}

func (e *StatBonusEffect) Name() string { return "StatBonus" }

func (e *StatBonusEffect) Apply(c *model.Character) {
	if e.Percent {
		slog.Debug("percent stat bonus not supported, skipped", "character", c.ID)
		return
	}
	c.Stats = c.Stats.Add(e.Stats)
	c.MaxHP += e.HP
	c.MaxMP += e.MP
}

func (e *StatBonusEffect) Remove(c *model.Character) {
	if e.Percent {
		return
	}
	c.Stats = c.Stats.Sub(e.Stats)
	c.MaxHP -= e.HP
	c.MaxMP -= e.MP
}

func (e *StatBonusEffect) Scale(m float64) Effect {
	return &StatBonusEffect{
		Stats: model.Stats{
			Strength: scaleInt32(e.Stats.Strength, m),
			Agility:  scaleInt32(e.Stats.Agility, m),
			Vitality: scaleInt32(e.Stats.Vitality, m),
			Magic:    scaleInt32(e.Stats.Magic, m),
		},
		HP:      scaleInt32(e.HP, m),
		MP:      scaleInt32(e.MP, m),
		Percent: e.Percent,
	}
}

func (e *StatBonusEffect) Describe() string {
	var parts []string
	add := func(label string, v int32) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s%+d", label, v))
		}
	}
	add("STR", e.Stats.Strength)
	add("AGI", e.Stats.Agility)
	add("VIT", e.Stats.Vitality)
	add("MAG", e.Stats.Magic)
	add("HP", e.HP)
	add("MP", e.MP)
	if len(parts) == 0 {
		return "StatBonus(none)"
	}
	return "StatBonus(" + strings.Join(parts, " ") + ")"
}
