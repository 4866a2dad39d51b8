package model

import (
	"fmt"
	"strings"
)

// ItemCategory определяет категорию предмета.
// Детектор синергий сравнивает только категорию, остальные поля предмета не читаются.
type ItemCategory int32

const (
	CategoryNone ItemCategory = iota
	CategoryWeapon
	CategoryArmor
	CategoryShield
	CategoryHelmet
	CategoryAccessory
	CategoryRing
	CategoryAmulet
	CategoryConsumable
	CategoryMaterial
	CategoryGem
	CategoryRelic
)

var categoryNames = [...]string{
	CategoryNone:       "None",
	CategoryWeapon:     "Weapon",
	CategoryArmor:      "Armor",
	CategoryShield:     "Shield",
	CategoryHelmet:     "Helmet",
	CategoryAccessory:  "Accessory",
	CategoryRing:       "Ring",
	CategoryAmulet:     "Amulet",
	CategoryConsumable: "Consumable",
	CategoryMaterial:   "Material",
	CategoryGem:        "Gem",
	CategoryRelic:      "Relic",
}

// String returns human-readable category name.
func (c ItemCategory) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// ParseItemCategory resolves a category name (case-insensitive).
// CategoryNone is not a valid requirement and is rejected.
func ParseItemCategory(s string) (ItemCategory, error) {
	for i, name := range categoryNames {
		if i == int(CategoryNone) {
			continue
		}
		if strings.EqualFold(name, s) {
			return ItemCategory(i), nil
		}
	}
	return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
