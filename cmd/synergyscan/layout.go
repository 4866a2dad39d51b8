package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/synergy/internal/model"
)

// layoutFile describes a character and their inventory grid.
type layoutFile struct {
	Width     int             `yaml:"width"`
	Height    int             `yaml:"height"`
	Character layoutCharacter `yaml:"character"`
	Items     []layoutItem    `yaml:"items"`
}

type layoutCharacter struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Strength int32  `yaml:"str"`
	Agility  int32  `yaml:"agi"`
	Vitality int32  `yaml:"vit"`
	Magic    int32  `yaml:"mag"`
	MaxHP    int32  `yaml:"hp"`
	MaxMP    int32  `yaml:"mp"`
}

type layoutItem struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// loadLayout reads a layout file and builds the inventory and character.
func loadLayout(path string) (*model.Inventory, *model.Character, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return parseLayout(raw)
}

func parseLayout(raw []byte) (*model.Inventory, *model.Character, error) {
	var lf layoutFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return nil, nil, fmt.Errorf("parsing layout: %w", err)
	}
	if lf.Width <= 0 || lf.Height <= 0 {
		return nil, nil, fmt.Errorf("layout grid %dx%d: %w", lf.Width, lf.Height, model.ErrCellOutOfBounds)
	}

	ch := lf.Character
	if ch.Name == "" {
		ch.Name = "Adventurer"
	}
	character := model.NewCharacter(ch.ID, ch.Name,
		model.Stats{Strength: ch.Strength, Agility: ch.Agility, Vitality: ch.Vitality, Magic: ch.Magic},
		ch.MaxHP, ch.MaxMP)

	inv := model.NewInventory(ch.ID, lf.Width, lf.Height)
	for i, it := range lf.Items {
		cat, err := model.ParseItemCategory(it.Category)
		if err != nil {
			return nil, nil, fmt.Errorf("layout item #%d: %w", i, err)
		}
		name := it.Name
		if name == "" {
			name = cat.String()
		}
		if err := inv.Place(model.Point{X: it.X, Y: it.Y}, model.NewItem(int32(i+1), name, cat)); err != nil {
			return nil, nil, fmt.Errorf("layout item #%d: %w", i, err)
		}
	}

	return inv, character, nil
}
