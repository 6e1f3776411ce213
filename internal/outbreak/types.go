package outbreak

// Event is one entry of a run's event log. T is the tick the event belongs to;
// spawns happen at T=0.
type Event struct {
	T       int            `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventSpawn   = "Spawn"
	EventMove    = "Move"
	EventConvert = "Convert"
	EventTick    = "Tick"
)

// AgentView is the per-tick state a renderer needs for one agent.
type AgentView struct {
	ID   int  `json:"id"`
	Kind Kind `json:"kind"`
	Pos  Cell `json:"pos"`
	Age  int  `json:"age"`
}

type Snapshot struct {
	Tick   int         `json:"tick"`
	Size   int         `json:"size"`
	Agents []AgentView `json:"agents"`
}

type AgentRecord struct {
	ID        int  `json:"id"`
	StartKind Kind `json:"start_kind"`
	FinalKind Kind `json:"final_kind"`
	Start     Cell `json:"start"`
	Final     Cell `json:"final"`
	HumanAge  int  `json:"human_age"`
	ZombieAge int  `json:"zombie_age"`
}

// Summary is the end-of-run export. HumanAges and AgesByStart only cover
// agents that started as humans.
type Summary struct {
	Ticks       int            `json:"ticks"`
	Size        int            `json:"size"`
	Agents      []AgentRecord  `json:"agents"`
	HumanAges   []int          `json:"human_ages"`
	AgesByStart map[Cell][]int `json:"ages_by_start"`
}

func (s Summary) Survivors() int {
	n := 0
	for _, a := range s.Agents {
		if a.FinalKind == Human {
			n++
		}
	}
	return n
}

// AverageHumanAge is false when the run had no humans.
func (s Summary) AverageHumanAge() (float64, bool) {
	if len(s.HumanAges) == 0 {
		return 0, false
	}
	sum := 0
	for _, v := range s.HumanAges {
		sum += v
	}
	return float64(sum) / float64(len(s.HumanAges)), true
}
