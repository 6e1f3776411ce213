package outbreak

import "sort"

type candidate struct {
	id   int
	dist float64
}

// locateTarget picks the nearest agent of the opposite kind anywhere on the grid.
// Candidates are shuffled before a stable sort so equal distances are broken at
// random instead of by scan order.
func (m *Model) locateTarget(a *Agent) {
	a.Target = m.NearestOpponent(a)
}

// NearestOpponent returns NoTarget when no agent of the opposite kind is left.
func (m *Model) NearestOpponent(a *Agent) int {
	var cands []candidate
	for _, id := range m.Grid.Neighbors(a.Pos, m.Grid.Diameter(), false) {
		other := m.Agents[id]
		if other.Kind != a.Kind.Opposite() {
			continue
		}
		cands = append(cands, candidate{id: id, dist: a.Pos.Dist(other.Pos)})
	}
	if len(cands) == 0 {
		return NoTarget
	}
	m.Rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	return cands[0].id
}
