package outbreak

import "fmt"

type Kind uint8

const (
	Human Kind = iota
	Zombie
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Zombie:
		return "zombie"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) Opposite() Kind {
	if k == Human {
		return Zombie
	}
	return Human
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "human":
		*k = Human
	case "zombie":
		*k = Zombie
	default:
		return fmt.Errorf("unknown kind %q", b)
	}
	return nil
}

// NoTarget marks an agent without an opposite-kind agent left to chase or flee.
const NoTarget = -1

// Agent is one grid occupant. Target is the ID of another agent, resolved
// through the owning Model; agents never hold pointers to each other.
type Agent struct {
	ID           int
	Kind         Kind
	OriginalKind Kind
	Pos          Cell
	StartPos     Cell
	HumanAge     int
	ZombieAge    int
	Speed        int
	Target       int
}

func newAgent(id int, kind Kind) *Agent {
	a := &Agent{ID: id, Kind: kind, OriginalKind: kind, Speed: 1, Target: NoTarget}
	if kind == Zombie {
		a.ZombieAge = 1
	}
	return a
}

// Age is the counter for the kind the agent currently holds.
func (a *Agent) Age() int {
	if a.Kind == Zombie {
		return a.ZombieAge
	}
	return a.HumanAge
}

func (a *Agent) grow() {
	if a.Kind == Zombie {
		a.ZombieAge++
	} else {
		a.HumanAge++
	}
}

// convert turns a human into a zombie. Zombie age starts from zero so the new
// zombie sits out its first activation.
func (a *Agent) convert() bool {
	if a.Kind == Zombie {
		return false
	}
	a.Kind = Zombie
	a.ZombieAge = 0
	return true
}
