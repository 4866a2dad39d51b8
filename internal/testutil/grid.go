package testutil

import (
	"testing"

	"github.com/udisondev/synergy/internal/model"
)

// LetterCategories maps the letters accepted by GridFromRows to categories.
var LetterCategories = map[rune]model.ItemCategory{
	'W': model.CategoryWeapon,
	'A': model.CategoryAccessory,
	'R': model.CategoryRing,
	'G': model.CategoryGem,
	'S': model.CategoryShield,
	'H': model.CategoryHelmet,
	'B': model.CategoryArmor,
	'M': model.CategoryAmulet,
	'C': model.CategoryConsumable,
	'X': model.CategoryRelic,
}

// GridFromRows строит инвентарь из строк с буквами категорий; '.' — пустая ячейка.
// All rows must have the same length.
func GridFromRows(t testing.TB, rows ...string) *model.Inventory {
	t.Helper()

	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	inv := model.NewInventory(1, width, height)
	id := int32(1)
	for y, row := range rows {
		if len(row) != width {
			t.Fatalf("row %d: width %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			if r == '.' {
				continue
			}
			cat, ok := LetterCategories[r]
			if !ok {
				t.Fatalf("row %d: unknown letter %q", y, r)
			}
			if err := inv.Place(model.Point{X: x, Y: y}, model.NewItem(id, string(r), cat)); err != nil {
				t.Fatalf("placing %q at (%d,%d): %v", r, x, y, err)
			}
			id++
		}
	}
	return inv
}

// NewCharacter returns a character with 10 in every stat, 100 HP and 50 MP.
func NewCharacter() *model.Character {
	return model.NewCharacter(7, "Tester", model.Stats{Strength: 10, Agility: 10, Vitality: 10, Magic: 10}, 100, 50)
}
