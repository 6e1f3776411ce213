package outbreak

import "encoding/json"

type SimResult struct {
	Ticks     int     `json:"ticks"`
	Survivors int     `json:"survivors"`
	Summary   Summary `json:"summary"`
	Events    []Event `json:"events,omitempty"`
}

// RunSingle drives m to termination. observe, when set, sees the grid before
// the first tick and after every tick.
func RunSingle(m *Model, record bool, observe func(Snapshot)) (SimResult, error) {
	var events []Event
	prev := m.Emit
	m.Emit = func(ev Event) {
		if record {
			events = append(events, ev)
		}
		if prev != nil {
			prev(ev)
		}
	}
	defer func() { m.Emit = prev }()

	if m.Ticks == 0 {
		m.Spawn()
	}
	if observe != nil {
		observe(m.Snapshot())
	}
	for !m.Done() {
		if err := m.Step(); err != nil {
			return SimResult{Ticks: m.Ticks, Events: events}, err
		}
		if observe != nil {
			observe(m.Snapshot())
		}
	}

	sum := m.Summary()
	res := SimResult{
		Ticks:     sum.Ticks,
		Survivors: sum.Survivors(),
		Summary:   sum,
	}
	if record {
		res.Events = events
	}
	return res, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
