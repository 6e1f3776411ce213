package outbreak

import "fmt"

// OccupiedCellError reports a placement or move onto a taken or off-grid cell.
// It always means the model broke its own invariants; runs abort on it.
type OccupiedCellError struct {
	Cell     Cell
	Agent    int
	Occupant int // NoTarget when the cell is off-grid
}

func (e *OccupiedCellError) Error() string {
	if e.Occupant == NoTarget {
		return fmt.Sprintf("agent %d: cell (%s) is out of bounds", e.Agent, e.Cell)
	}
	return fmt.Sprintf("agent %d: cell (%s) is occupied by agent %d", e.Agent, e.Cell, e.Occupant)
}

// ConfigurationError is returned by New when Params cannot describe a valid run.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
