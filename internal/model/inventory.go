package model

import (
	"fmt"
	"sync"
)

// Grid is a read-only width×height view of inventory cells.
// ItemAt returns nil for empty cells and for points outside the grid.
type Grid interface {
	Width() int
	Height() int
	ItemAt(p Point) *Item
}

// Inventory — живая инвентарная сетка персонажа.
// Может меняться из других горутин; для детекции синергий
// используется Snapshot(), который не меняется после создания.
type Inventory struct {
	ownerID int64
	width   int
	height  int
	cells   []*Item // row-major, len = width*height

	mu sync.RWMutex
}

// NewInventory создаёт пустую сетку width×height.
func NewInventory(ownerID int64, width, height int) *Inventory {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Inventory{
		ownerID: ownerID,
		width:   width,
		height:  height,
		cells:   make([]*Item, width*height),
	}
}

// OwnerID возвращает character ID владельца.
func (inv *Inventory) OwnerID() int64 {
	return inv.ownerID
}

func (inv *Inventory) Width() int  { return inv.width }
func (inv *Inventory) Height() int { return inv.height }

// ItemAt returns the item at p, or nil.
func (inv *Inventory) ItemAt(p Point) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if !p.In(inv.width, inv.height) {
		return nil
	}
	return inv.cells[p.Y*inv.width+p.X]
}

// Place puts item into an empty cell.
func (inv *Inventory) Place(p Point, item *Item) error {
	if item == nil {
		return ErrNilItem
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !p.In(inv.width, inv.height) {
		return fmt.Errorf("placing item %d at %s: %w", item.ID, p, ErrCellOutOfBounds)
	}
	idx := p.Y*inv.width + p.X
	if inv.cells[idx] != nil {
		return fmt.Errorf("placing item %d at %s: %w", item.ID, p, ErrCellOccupied)
	}
	inv.cells[idx] = item
	return nil
}

// Remove clears the cell and returns what was there (nil if empty or out of bounds).
func (inv *Inventory) Remove(p Point) *Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !p.In(inv.width, inv.height) {
		return nil
	}
	idx := p.Y*inv.width + p.X
	item := inv.cells[idx]
	inv.cells[idx] = nil
	return item
}

// Move relocates the item at from into the empty cell to.
func (inv *Inventory) Move(from, to Point) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !from.In(inv.width, inv.height) || !to.In(inv.width, inv.height) {
		return fmt.Errorf("moving %s -> %s: %w", from, to, ErrCellOutOfBounds)
	}
	src := from.Y*inv.width + from.X
	dst := to.Y*inv.width + to.X
	if inv.cells[src] == nil {
		return fmt.Errorf("moving %s -> %s: %w", from, to, ErrNilItem)
	}
	if src == dst {
		return nil
	}
	if inv.cells[dst] != nil {
		return fmt.Errorf("moving %s -> %s: %w", from, to, ErrCellOccupied)
	}
	inv.cells[dst], inv.cells[src] = inv.cells[src], nil
	return nil
}

// Count returns the number of occupied cells.
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	n := 0
	for _, it := range inv.cells {
		if it != nil {
			n++
		}
	}
	return n
}

// Snapshot copies the current cell layout into an immutable GridSnapshot.
func (inv *Inventory) Snapshot() *GridSnapshot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	cells := make([]*Item, len(inv.cells))
	copy(cells, inv.cells)
	return &GridSnapshot{width: inv.width, height: inv.height, cells: cells}
}

// CategoryCounter is implemented by grids that can count their items by
// category without probing every cell through ItemAt.
type CategoryCounter interface {
	CountByCategory() map[ItemCategory]int
}

// GridSnapshot — неизменяемая копия сетки на момент вызова Snapshot.
// Safe for concurrent reads without locking.
type GridSnapshot struct {
	width  int
	height int
	cells  []*Item
}

func (s *GridSnapshot) Width() int  { return s.width }
func (s *GridSnapshot) Height() int { return s.height }

// ItemAt returns the item at p, or nil.
func (s *GridSnapshot) ItemAt(p Point) *Item {
	if !p.In(s.width, s.height) {
		return nil
	}
	return s.cells[p.Y*s.width+p.X]
}

// CountByCategory returns how many cells hold each category.
func (s *GridSnapshot) CountByCategory() map[ItemCategory]int {
	counts := make(map[ItemCategory]int, 8)
	for _, it := range s.cells {
		if it != nil {
			counts[it.Category]++
		}
	}
	return counts
}
