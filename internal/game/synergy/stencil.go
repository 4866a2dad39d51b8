package synergy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/udisondev/synergy/internal/model"
)

var (
	ErrStencilHidden  = errors.New("stencil not discovered")
	ErrUnknownSource  = errors.New("unknown discovery source")
	ErrStencilUnknown = errors.New("stencil not in book")
)

// DiscoverySource — как игрок узнал о паттерне.
type DiscoverySource int8

const (
	DiscoveryUnknown DiscoverySource = iota
	DiscoveryPlayerMatch
	DiscoveryLoot
	DiscoveryEvent
)

// String returns human-readable source name.
func (s DiscoverySource) String() string {
	switch s {
	case DiscoveryUnknown:
		return "unknown"
	case DiscoveryPlayerMatch:
		return "player_match"
	case DiscoveryLoot:
		return "loot"
	case DiscoveryEvent:
		return "event"
	default:
		return "invalid"
	}
}

// ParseDiscoverySource is the inverse of DiscoverySource.String.
func ParseDiscoverySource(s string) (DiscoverySource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unknown", "":
		return DiscoveryUnknown, nil
	case "player_match":
		return DiscoveryPlayerMatch, nil
	case "loot":
		return DiscoveryLoot, nil
	case "event":
		return DiscoveryEvent, nil
	}
	return DiscoveryUnknown, fmt.Errorf("%w: %q", ErrUnknownSource, s)
}

// SynergyStencil — шаблон паттерна, который игрок может найти и наложить на сетку.
type SynergyStencil struct {
	patternID string
	source    DiscoverySource
	overlay   *model.Point
}

// NewSynergyStencil creates an undiscovered stencil for patternID.
func NewSynergyStencil(patternID string) *SynergyStencil {
	return &SynergyStencil{patternID: patternID}
}

func (s *SynergyStencil) PatternID() string       { return s.patternID }
func (s *SynergyStencil) Source() DiscoverySource { return s.source }
func (s *SynergyStencil) IsDiscovered() bool      { return s.source != DiscoveryUnknown }

// MarkDiscovered records how the stencil was found. The first source wins;
// later calls and DiscoveryUnknown are no-ops. Returns true if state changed.
func (s *SynergyStencil) MarkDiscovered(source DiscoverySource) bool {
	if s.source != DiscoveryUnknown || source == DiscoveryUnknown {
		return false
	}
	s.source = source
	return true
}

// Place overlays the stencil with its anchor at the given cell.
func (s *SynergyStencil) Place(anchor model.Point) error {
	if !s.IsDiscovered() {
		return fmt.Errorf("placing stencil %s: %w", s.patternID, ErrStencilHidden)
	}
	at := anchor
	s.overlay = &at
	return nil
}

// Lift removes the overlay.
func (s *SynergyStencil) Lift() {
	s.overlay = nil
}

// Overlay returns the overlay anchor, if placed.
func (s *SynergyStencil) Overlay() (model.Point, bool) {
	if s.overlay == nil {
		return model.Point{}, false
	}
	return *s.overlay, true
}

// StencilBook — набор трафаретов одного персонажа.
type StencilBook struct {
	stencils map[string]*SynergyStencil
}

// NewStencilBook creates an empty book.
func NewStencilBook() *StencilBook {
	return &StencilBook{stencils: make(map[string]*SynergyStencil)}
}

// Get returns the stencil for patternID, if the book tracks it.
func (b *StencilBook) Get(patternID string) (*SynergyStencil, bool) {
	s, ok := b.stencils[patternID]
	return s, ok
}

// Ensure returns the stencil for patternID, creating an undiscovered one if needed.
func (b *StencilBook) Ensure(patternID string) *SynergyStencil {
	s, ok := b.stencils[patternID]
	if !ok {
		s = NewSynergyStencil(patternID)
		b.stencils[patternID] = s
	}
	return s
}

// Discover marks patternID discovered by source. Returns true on first discovery.
func (b *StencilBook) Discover(patternID string, source DiscoverySource) bool {
	return b.Ensure(patternID).MarkDiscovered(source)
}

// Visible reports whether the player has discovered patternID.
func (b *StencilBook) Visible(patternID string) bool {
	s, ok := b.stencils[patternID]
	return ok && s.IsDiscovered()
}

// Place overlays a discovered stencil.
func (b *StencilBook) Place(patternID string, anchor model.Point) error {
	s, ok := b.stencils[patternID]
	if !ok {
		return fmt.Errorf("placing stencil %s: %w", patternID, ErrStencilUnknown)
	}
	return s.Place(anchor)
}

// Discovered returns discovered stencils sorted by pattern id.
func (b *StencilBook) Discovered() []*SynergyStencil {
	out := make([]*SynergyStencil, 0, len(b.stencils))
	for _, s := range b.stencils {
		if s.IsDiscovered() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].patternID < out[j].patternID })
	return out
}

// Len returns how many stencils the book tracks.
func (b *StencilBook) Len() int {
	return len(b.stencils)
}
