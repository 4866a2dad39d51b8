package model

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown item category")
	ErrCellOutOfBounds = errors.New("cell out of grid bounds")
	ErrCellOccupied    = errors.New("cell already occupied")
	ErrNilItem         = errors.New("item is nil")
)

// Item — предмет, лежащий в ячейке инвентаря.
// Immutable once placed; the grid stores pointers and snapshots share them.
type Item struct {
	ID       int32
	Name     string
	Category ItemCategory
}

// NewItem creates an item of the given category.
func NewItem(id int32, name string, category ItemCategory) *Item {
	return &Item{ID: id, Name: name, Category: category}
}
