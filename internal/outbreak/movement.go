package outbreak

import "sort"

// moveOptions are the empty cells within reach plus the agent's own cell.
func (m *Model) moveOptions(a *Agent) []Cell {
	var opts []Cell
	for _, c := range m.Grid.NeighborhoodCells(a.Pos, a.Speed, false) {
		if m.Grid.IsEmpty(c) {
			opts = append(opts, c)
		}
	}
	return append(opts, a.Pos)
}

// rankByDistance stable-sorts opts by distance to p, farthest first when away is set.
func rankByDistance(opts []Cell, p Cell, away bool) {
	sort.SliceStable(opts, func(i, j int) bool {
		di, dj := opts[i].Dist(p), opts[j].Dist(p)
		if away {
			return di > dj
		}
		return di < dj
	})
}

func (m *Model) move(a *Agent) error {
	// zombies stay idle until they have aged one tick
	if a.Kind == Zombie && a.ZombieAge < 1 {
		return nil
	}
	opts := m.moveOptions(a)
	m.Rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })

	if a.Target == NoTarget {
		return m.relocate(a, opts[m.Rng.Intn(len(opts))])
	}
	target := m.Agents[a.Target]

	switch a.Kind {
	case Human:
		rankByDistance(opts, target.Pos, true)
		return m.relocate(a, opts[0])
	case Zombie:
		if m.adjacent(a, target) {
			m.infect(a, target)
			return nil
		}
		rankByDistance(opts, target.Pos, false)
		return m.relocate(a, opts[0])
	}
	return nil
}

func (m *Model) adjacent(a, other *Agent) bool {
	for _, id := range m.Grid.Neighbors(a.Pos, 1, false) {
		if id == other.ID {
			return true
		}
	}
	return false
}

func (m *Model) infect(z, h *Agent) {
	if !h.convert() {
		return
	}
	m.emit(Event{T: m.Ticks + 1, Type: EventConvert, Payload: map[string]any{
		"zombie": z.ID, "target": h.ID, "x": h.Pos.X, "y": h.Pos.Y, "human_age": h.HumanAge,
	}})
}

func (m *Model) relocate(a *Agent, to Cell) error {
	if to == a.Pos {
		return nil
	}
	if err := m.Grid.Move(a.ID, to); err != nil {
		return err
	}
	from := a.Pos
	a.Pos = to
	m.emit(Event{T: m.Ticks + 1, Type: EventMove, Payload: map[string]any{
		"id": a.ID, "kind": a.Kind.String(), "from": []int{from.X, from.Y}, "to": []int{to.X, to.Y},
	}})
	return nil
}
