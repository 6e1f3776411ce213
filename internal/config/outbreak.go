package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type OutbreakConfig struct {
	Humans      int          `yaml:"humans"`
	GridSize    int          `yaml:"grid_size"`
	ZombieStart StartDef     `yaml:"zombie_start"`
	HumanStarts []CellDef    `yaml:"human_starts"`
	MaxTicks    int          `yaml:"max_ticks"`
	Runs        int          `yaml:"runs"`
	Seed        int64        `yaml:"seed"`
	Workers     int          `yaml:"workers"`
	Output      OutputConfig `yaml:"output"`
}

type OutputConfig struct {
	Dir         string `yaml:"dir"`
	FramesEvery int    `yaml:"frames_every"`
	CellPx      int    `yaml:"cell_px"`
	Animation   string `yaml:"animation"`
	Heatmap     string `yaml:"heatmap"`
}

type CellDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// UnmarshalYAML accepts [x, y] as well as {x: .., y: ..}.
func (c *CellDef) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xy []int
		if err := n.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: cell needs 2 coordinates, got %d", n.Line, len(xy))
		}
		c.X, c.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		type plain CellDef
		return n.Decode((*plain)(c))
	}
	return fmt.Errorf("line %d: cell must be [x, y]", n.Line)
}

// StartDef is either a fixed cell or "random" ("?" is accepted too).
type StartDef struct {
	Random bool
	Cell   CellDef
}

func (s *StartDef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		switch strings.ToLower(strings.TrimSpace(n.Value)) {
		case "random", "?", "":
			*s = StartDef{Random: true}
			return nil
		}
		return fmt.Errorf("line %d: zombie_start must be \"random\" or [x, y], got %q", n.Line, n.Value)
	}
	var c CellDef
	if err := n.Decode(&c); err != nil {
		return err
	}
	*s = StartDef{Cell: c}
	return nil
}

func (s StartDef) MarshalYAML() (any, error) {
	if s.Random {
		return "random", nil
	}
	return []int{s.Cell.X, s.Cell.Y}, nil
}

// Default mirrors the classic setup: 9 humans on a 10x10 grid, zombie in the corner.
func Default() *OutbreakConfig {
	return &OutbreakConfig{
		Humans:      9,
		GridSize:    10,
		ZombieStart: StartDef{Cell: CellDef{0, 0}},
		MaxTicks:    50,
		Runs:        1000,
		Seed:        12345,
		Workers:     8,
		Output: OutputConfig{
			Dir:         "ZombieModelOutput",
			FramesEvery: 100,
			CellPx:      40,
			Animation:   "gif",
			Heatmap:     "average",
		},
	}
}

func (c *OutbreakConfig) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("grid_size must be positive, got %d", c.GridSize)
	case c.Humans < 0:
		return fmt.Errorf("humans must not be negative, got %d", c.Humans)
	case c.Runs <= 0:
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case c.MaxTicks < 0:
		return fmt.Errorf("max_ticks must not be negative, got %d", c.MaxTicks)
	case c.Output.FramesEvery < 0:
		return fmt.Errorf("output.frames_every must not be negative, got %d", c.Output.FramesEvery)
	case c.Output.CellPx <= 0:
		return fmt.Errorf("output.cell_px must be positive, got %d", c.Output.CellPx)
	}
	switch c.Output.Animation {
	case "gif", "avi":
	default:
		return fmt.Errorf("output.animation must be gif or avi, got %q", c.Output.Animation)
	}
	switch c.Output.Heatmap {
	case "average", "max", "min":
	default:
		return fmt.Errorf("output.heatmap must be average, max or min, got %q", c.Output.Heatmap)
	}
	return nil
}
