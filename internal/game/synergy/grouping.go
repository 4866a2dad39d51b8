package synergy

import "slices"

// OrderFunc orders candidate matches of one pattern before greedy grouping.
// It follows the slices.SortStableFunc convention; ties keep scan order.
type OrderFunc func(a, b *ActiveSynergy) int

// PreferEarnedPoints puts matches that already carry points first, so stacks
// that have been progressing survive a rescan in preference to fresh ones.
func PreferEarnedPoints(a, b *ActiveSynergy) int {
	switch {
	case a.pointsEarned > b.pointsEarned:
		return -1
	case a.pointsEarned < b.pointsEarned:
		return 1
	default:
		return 0
	}
}

// GroupMatches splits detector output into per-pattern groups.
//
// Groups come back in order of each pattern's first match, which for detector
// output is registration order. Within a pattern candidates are fed to
// TryAddInstance in scan order, or in order's order when order is non-nil.
// The second result counts candidates rejected for overlap or cap.
func GroupMatches(matches []*ActiveSynergy, order OrderFunc) ([]*ActiveSynergyGroup, int) {
	var (
		ids        []string
		candidates = make(map[string][]*ActiveSynergy)
	)
	for _, m := range matches {
		if m == nil {
			continue
		}
		id := m.pattern.id
		if _, seen := candidates[id]; !seen {
			ids = append(ids, id)
		}
		candidates[id] = append(candidates[id], m)
	}

	groups := make([]*ActiveSynergyGroup, 0, len(ids))
	rejected := 0
	for _, id := range ids {
		list := candidates[id]
		if order != nil {
			list = slices.Clone(list)
			slices.SortStableFunc(list, order)
		}

		g := NewActiveSynergyGroup(list[0].pattern)
		for _, m := range list {
			if !g.TryAddInstance(m) {
				rejected++
			}
		}
		groups = append(groups, g)
	}
	return groups, rejected
}
