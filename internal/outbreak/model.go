package outbreak

import (
	"fmt"
	"math/rand"
)

const DefaultMaxTicks = 50

// Params describes one run. A nil ZombieStart places the zombie at random;
// an empty HumanStarts places every human at random.
type Params struct {
	Humans      int
	GridSize    int
	ZombieStart *Cell
	HumanStarts []Cell
	MaxTicks    int
}

func (p Params) validate() error {
	if p.GridSize <= 0 {
		return configErr("grid_size", "must be positive, got %d", p.GridSize)
	}
	if p.Humans < 0 {
		return configErr("humans", "must not be negative, got %d", p.Humans)
	}
	if capacity := p.GridSize * p.GridSize; p.Humans+1 > capacity {
		return configErr("humans", "%d humans and 1 zombie do not fit on a %dx%d grid", p.Humans, p.GridSize, p.GridSize)
	}
	if n := len(p.HumanStarts); n != 0 && n != p.Humans {
		return configErr("human_starts", "got %d positions for %d humans", n, p.Humans)
	}
	if p.MaxTicks < 0 {
		return configErr("max_ticks", "must not be negative, got %d", p.MaxTicks)
	}
	return nil
}

// Model owns the grid and every agent of one run. Agent IDs index Agents.
type Model struct {
	Grid     *Grid
	Agents   []*Agent
	Ticks    int
	MaxTicks int
	Rng      *rand.Rand
	Emit     func(Event)
}

func New(p Params, rng *rand.Rand) (*Model, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, configErr("rng", "a random source is required")
	}
	m := &Model{
		Grid:     NewGrid(p.GridSize, p.GridSize),
		Agents:   make([]*Agent, 0, p.Humans+1),
		MaxTicks: p.MaxTicks,
		Rng:      rng,
	}
	if m.MaxTicks == 0 {
		m.MaxTicks = DefaultMaxTicks
	}

	free := m.Grid.Cells()
	draw := func() Cell {
		i := rng.Intn(len(free))
		c := free[i]
		free = append(free[:i], free[i+1:]...)
		return c
	}
	reserve := func(c Cell) {
		for i, f := range free {
			if f == c {
				free = append(free[:i], free[i+1:]...)
				return
			}
		}
	}

	// a random zombie must not land on a cell promised to a human
	for _, c := range p.HumanStarts {
		reserve(c)
	}

	for id := 0; id <= p.Humans; id++ {
		var a *Agent
		var at Cell
		switch {
		case id == 0:
			a = newAgent(id, Zombie)
			if p.ZombieStart == nil {
				at = draw()
			} else {
				at = *p.ZombieStart
				reserve(at)
			}
		case len(p.HumanStarts) == 0:
			a = newAgent(id, Human)
			at = draw()
		default:
			a = newAgent(id, Human)
			at = p.HumanStarts[id-1]
		}
		if err := m.Grid.Place(id, at); err != nil {
			return nil, fmt.Errorf("place %s %d: %w", a.Kind, id, err)
		}
		a.Pos, a.StartPos = at, at
		m.Agents = append(m.Agents, a)
	}
	return m, nil
}

// Spawn replays the initial placement through Emit. Call it after setting Emit.
func (m *Model) Spawn() {
	for _, a := range m.Agents {
		m.emit(Event{T: 0, Type: EventSpawn, Payload: map[string]any{
			"id": a.ID, "kind": a.Kind.String(), "x": a.Pos.X, "y": a.Pos.Y,
		}})
	}
}

func (m *Model) emit(ev Event) {
	if m.Emit != nil {
		m.Emit(ev)
	}
}

func (m *Model) Agent(id int) *Agent {
	if id < 0 || id >= len(m.Agents) {
		return nil
	}
	return m.Agents[id]
}

func (m *Model) Count(k Kind) int {
	n := 0
	for _, a := range m.Agents {
		if a.Kind == k {
			n++
		}
	}
	return n
}

func (m *Model) HumanCount() int { return m.Count(Human) }

func (m *Model) Done() bool {
	return m.HumanCount() == 0 || m.Ticks >= m.MaxTicks
}

// Step runs one tick: every agent acts once in a fresh random order, seeing the
// moves of agents that acted before it, then each agent ages in its current kind.
func (m *Model) Step() error {
	order := make([]int, len(m.Agents))
	for i := range order {
		order[i] = i
	}
	m.Rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, id := range order {
		a := m.Agents[id]
		m.locateTarget(a)
		if err := m.move(a); err != nil {
			return fmt.Errorf("tick %d: %s %d: %w", m.Ticks+1, a.Kind, id, err)
		}
	}
	for _, a := range m.Agents {
		a.grow()
	}
	m.Ticks++
	m.emit(Event{T: m.Ticks, Type: EventTick, Payload: map[string]any{
		"humans": m.Count(Human), "zombies": m.Count(Zombie),
	}})
	return nil
}

// Run steps until no humans remain or the tick ceiling is hit.
func (m *Model) Run() (Summary, error) {
	for !m.Done() {
		if err := m.Step(); err != nil {
			return Summary{}, err
		}
	}
	return m.Summary(), nil
}

func (m *Model) Snapshot() Snapshot {
	s := Snapshot{Tick: m.Ticks, Size: m.Grid.Width, Agents: make([]AgentView, len(m.Agents))}
	for i, a := range m.Agents {
		s.Agents[i] = AgentView{ID: a.ID, Kind: a.Kind, Pos: a.Pos, Age: a.Age()}
	}
	return s
}

func (m *Model) Summary() Summary {
	s := Summary{
		Ticks:       m.Ticks,
		Size:        m.Grid.Width,
		Agents:      make([]AgentRecord, 0, len(m.Agents)),
		AgesByStart: map[Cell][]int{},
	}
	for _, a := range m.Agents {
		s.Agents = append(s.Agents, AgentRecord{
			ID:        a.ID,
			StartKind: a.OriginalKind,
			FinalKind: a.Kind,
			Start:     a.StartPos,
			Final:     a.Pos,
			HumanAge:  a.HumanAge,
			ZombieAge: a.ZombieAge,
		})
		if a.OriginalKind == Human {
			s.HumanAges = append(s.HumanAges, a.HumanAge)
			s.AgesByStart[a.StartPos] = append(s.AgesByStart[a.StartPos], a.HumanAge)
		}
	}
	return s
}
