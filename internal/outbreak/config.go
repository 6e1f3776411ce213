package outbreak

import "outbreak/internal/config"

// ParamsFromConfig maps a loaded run configuration onto model parameters.
func ParamsFromConfig(cfg *config.OutbreakConfig) Params {
	p := Params{
		Humans:   cfg.Humans,
		GridSize: cfg.GridSize,
		MaxTicks: cfg.MaxTicks,
	}
	if !cfg.ZombieStart.Random {
		p.ZombieStart = &Cell{cfg.ZombieStart.Cell.X, cfg.ZombieStart.Cell.Y}
	}
	for _, c := range cfg.HumanStarts {
		p.HumanStarts = append(p.HumanStarts, Cell{c.X, c.Y})
	}
	return p
}
