package synergy

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/udisondev/synergy/internal/model"
)

var ErrUnknownEffect = errors.New("unknown effect type")

// Effect — единица изменения персонажа, которую даёт активный паттерн.
//
// Apply and Remove are a strict pair: Remove right after Apply restores every
// numeric field the effect touches. Effects never fail; degenerate values
// simply contribute nothing.
type Effect interface {
	Name() string
	Apply(c *model.Character)
	Remove(c *model.Character)

	// Scale returns a new effect whose numeric deltas are multiplied by m.
	// Capabilities (e.g. counter-attack) are not scaled.
	Scale(m float64) Effect

	// Describe returns a short human-readable summary for logs and tooling.
	Describe() string
}

// effectRegistry maps effect name → factory function.
// Populated by init() below; catalog loaders resolve effect entries through it.
var effectRegistry = map[string]func(params map[string]string) Effect{}

// RegisterEffect registers an effect factory by name.
func RegisterEffect(name string, factory func(params map[string]string) Effect) {
	effectRegistry[name] = factory
}

// CreateEffect creates an effect by name using the registered factory.
// Returns error if name is not registered.
func CreateEffect(name string, params map[string]string) (Effect, error) {
	factory, ok := effectRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, name)
	}
	return factory(params), nil
}

// EffectNames lists registered effect names in sorted order.
func EffectNames() []string {
	names := make([]string, 0, len(effectRegistry))
	for name := range effectRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterEffect("StatBonus", NewStatBonusEffect)
	RegisterEffect("PassiveAbility", NewPassiveAbilityEffect)
	RegisterEffect("SkillModifier", NewSkillModifierEffect)
	RegisterEffect("GrowthModifier", NewGrowthModifierEffect)
}

// --- param helpers ---
// Malformed numbers parse as zero: the effect then contributes nothing.

func paramFloat(params map[string]string, key string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(params[key]), 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func paramInt32(params map[string]string, key string) int32 {
	v, _ := strconv.ParseInt(strings.TrimSpace(params[key]), 10, 32)
	return int32(v)
}

func paramBool(params map[string]string, key string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(params[key]))
	return v
}

func scaleInt32(v int32, m float64) int32 {
	return int32(math.Round(float64(v) * m))
}
