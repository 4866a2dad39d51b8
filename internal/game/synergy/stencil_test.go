package synergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/synergy/internal/model"
)

func TestSynergyStencil_FirstDiscoveryWins(t *testing.T) {
	s := NewSynergyStencil("quad")
	assert.False(t, s.IsDiscovered())

	assert.False(t, s.MarkDiscovered(DiscoveryUnknown), "unknown source does not discover")
	assert.True(t, s.MarkDiscovered(DiscoveryLoot))
	assert.False(t, s.MarkDiscovered(DiscoveryPlayerMatch))
	assert.False(t, s.MarkDiscovered(DiscoveryEvent))

	assert.True(t, s.IsDiscovered())
	assert.Equal(t, DiscoveryLoot, s.Source())
}

func TestSynergyStencil_Placement(t *testing.T) {
	s := NewSynergyStencil("quad")
	assert.ErrorIs(t, s.Place(model.Point{X: 1}), ErrStencilHidden)

	s.MarkDiscovered(DiscoveryEvent)
	require.NoError(t, s.Place(model.Point{X: 2, Y: 3}))
	at, ok := s.Overlay()
	assert.True(t, ok)
	assert.Equal(t, model.Point{X: 2, Y: 3}, at)

	s.Lift()
	_, ok = s.Overlay()
	assert.False(t, ok)
}

func TestStencilBook(t *testing.T) {
	b := NewStencilBook()
	assert.False(t, b.Visible("b"))

	assert.True(t, b.Discover("b", DiscoveryPlayerMatch))
	assert.False(t, b.Discover("b", DiscoveryLoot))
	assert.True(t, b.Discover("a", DiscoveryLoot))
	b.Ensure("hidden")

	assert.True(t, b.Visible("b"))
	assert.False(t, b.Visible("hidden"))
	assert.Equal(t, 3, b.Len())

	discovered := b.Discovered()
	require.Len(t, discovered, 2)
	assert.Equal(t, "a", discovered[0].PatternID())
	assert.Equal(t, "b", discovered[1].PatternID())

	assert.ErrorIs(t, b.Place("missing", model.Point{}), ErrStencilUnknown)
	assert.ErrorIs(t, b.Place("hidden", model.Point{}), ErrStencilHidden)
	assert.NoError(t, b.Place("a", model.Point{}))
}

func TestDiscoverySource_RoundTrip(t *testing.T) {
	for _, s := range []DiscoverySource{DiscoveryUnknown, DiscoveryPlayerMatch, DiscoveryLoot, DiscoveryEvent} {
		got, err := ParseDiscoverySource(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseDiscoverySource("bribe")
	assert.ErrorIs(t, err, ErrUnknownSource)
}
