package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_PlaceAndRemove(t *testing.T) {
	inv := NewInventory(1, 3, 2)
	sword := NewItem(1, "Sword", CategoryWeapon)

	require.NoError(t, inv.Place(Point{X: 2, Y: 1}, sword))
	assert.Same(t, sword, inv.ItemAt(Point{X: 2, Y: 1}))
	assert.Equal(t, 1, inv.Count())

	assert.ErrorIs(t, inv.Place(Point{X: 2, Y: 1}, NewItem(2, "Axe", CategoryWeapon)), ErrCellOccupied)
	assert.ErrorIs(t, inv.Place(Point{X: 3, Y: 0}, sword), ErrCellOutOfBounds)
	assert.ErrorIs(t, inv.Place(Point{X: -1, Y: 0}, sword), ErrCellOutOfBounds)
	assert.ErrorIs(t, inv.Place(Point{}, nil), ErrNilItem)

	assert.Same(t, sword, inv.Remove(Point{X: 2, Y: 1}))
	assert.Nil(t, inv.Remove(Point{X: 2, Y: 1}))
	assert.Nil(t, inv.Remove(Point{X: 9, Y: 9}))
	assert.Zero(t, inv.Count())
}

func TestInventory_Move(t *testing.T) {
	inv := NewInventory(1, 2, 2)
	ring := NewItem(1, "Ring", CategoryRing)
	gem := NewItem(2, "Gem", CategoryGem)
	require.NoError(t, inv.Place(Point{}, ring))
	require.NoError(t, inv.Place(Point{X: 1}, gem))

	assert.ErrorIs(t, inv.Move(Point{}, Point{X: 1}), ErrCellOccupied)
	assert.ErrorIs(t, inv.Move(Point{Y: 1}, Point{X: 1, Y: 1}), ErrNilItem)
	assert.ErrorIs(t, inv.Move(Point{}, Point{X: 5}), ErrCellOutOfBounds)

	require.NoError(t, inv.Move(Point{}, Point{Y: 1}))
	assert.Nil(t, inv.ItemAt(Point{}))
	assert.Same(t, ring, inv.ItemAt(Point{Y: 1}))
}

func TestInventory_SnapshotIsIndependent(t *testing.T) {
	inv := NewInventory(1, 2, 1)
	require.NoError(t, inv.Place(Point{}, NewItem(1, "Ring", CategoryRing)))

	snap := inv.Snapshot()
	inv.Remove(Point{})
	require.NoError(t, inv.Place(Point{X: 1}, NewItem(2, "Gem", CategoryGem)))

	assert.Equal(t, 2, snap.Width())
	assert.Equal(t, 1, snap.Height())
	require.NotNil(t, snap.ItemAt(Point{}))
	assert.Equal(t, CategoryRing, snap.ItemAt(Point{}).Category)
	assert.Nil(t, snap.ItemAt(Point{X: 1}))
	assert.Nil(t, snap.ItemAt(Point{X: 2}))
	assert.Equal(t, map[ItemCategory]int{CategoryRing: 1}, snap.CountByCategory())
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
