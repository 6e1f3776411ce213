package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"outbreak/internal/config"
	"outbreak/internal/outbreak"
	"outbreak/internal/render"
	"outbreak/internal/runner"
	"outbreak/internal/stats"
	"outbreak/internal/util"
)

func main() {
	var cfgPath, out, level string
	var seed int64
	var n, humans, size, workers int
	var saveLog bool
	flag.StringVar(&cfgPath, "config", "", "YAML run config (defaults when empty)")
	flag.StringVar(&out, "out", "out.json", "result file for a single run")
	flag.Int64Var(&seed, "seed", 0, "base seed (overrides config when non-zero)")
	flag.IntVar(&n, "n", 0, "number of simulations (overrides config runs)")
	flag.IntVar(&humans, "humans", -1, "number of humans (overrides config)")
	flag.IntVar(&size, "size", 0, "grid side length (overrides config)")
	flag.IntVar(&workers, "workers", 0, "batch workers (overrides config)")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.StringVar(&level, "v", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Error("config", "err", err)
			os.Exit(1)
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if n > 0 {
		cfg.Runs = n
	}
	if humans >= 0 {
		cfg.Humans = humans
	}
	if size > 0 {
		cfg.GridSize = size
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if cfg.Runs <= 1 {
		err = single(cfg, out, saveLog, log)
	} else {
		err = batch(ctx, cfg, log)
	}
	if err != nil {
		log.Error("simsvc failed", "err", err)
		os.Exit(1)
	}
}

func single(cfg *config.OutbreakConfig, out string, saveLog bool, log *slog.Logger) error {
	m, err := outbreak.New(outbreak.ParamsFromConfig(cfg), util.New(cfg.Seed))
	if err != nil {
		return err
	}
	var frames []outbreak.Snapshot
	var observe func(outbreak.Snapshot)
	if cfg.Output.FramesEvery > 0 {
		observe = func(s outbreak.Snapshot) { frames = append(frames, s) }
	}
	res, err := outbreak.RunSingle(m, saveLog, observe)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, outbreak.MarshalPretty(res), 0644); err != nil {
		return err
	}
	if len(frames) > 0 {
		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			return err
		}
		path, err := render.Animate(cfg.Output.Dir, fmt.Sprintf("seed%d", cfg.Seed), cfg.Output.Animation, frames, cfg.Output.CellPx)
		if err != nil {
			return err
		}
		log.Info("animation written", "path", path, "frames", len(frames))
	}
	log.Info("single run finished", "ticks", res.Ticks, "survivors", res.Survivors, "out", out)
	return nil
}

func batch(ctx context.Context, cfg *config.OutbreakConfig, log *slog.Logger) error {
	dir := cfg.Output.Dir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	agg, err := runner.Batch(ctx, runner.Options{
		Params:      outbreak.ParamsFromConfig(cfg),
		Runs:        cfg.Runs,
		Seed:        cfg.Seed,
		Workers:     cfg.Workers,
		FramesEvery: cfg.Output.FramesEvery,
		OnFrames: func(run int, frames []outbreak.Snapshot) error {
			_, err := render.Animate(dir, fmt.Sprintf("seed%d", run), cfg.Output.Animation, frames, cfg.Output.CellPx)
			return err
		},
		Logger: log,
	})
	if err != nil {
		return err
	}

	report := agg.Report()
	if err := os.WriteFile(filepath.Join(dir, "summary.json"), outbreak.MarshalPretty(report), 0644); err != nil {
		return err
	}
	if err := writePlot(filepath.Join(dir, "max_human_age.png"), func(f *os.File) error {
		return render.TicksHistogram(f, agg)
	}); err != nil {
		return err
	}
	if len(agg.AverageAges()) > 0 {
		if err := writePlot(filepath.Join(dir, "average_human_age.png"), func(f *os.File) error {
			return render.AverageAgeHistogram(f, agg, 20)
		}); err != nil {
			return err
		}
	}
	mode := stats.HeatmapMode(cfg.Output.Heatmap)
	grid, err := agg.Heatmap(mode)
	if err != nil {
		return err
	}
	if err := writePlot(filepath.Join(dir, "heatmap_"+string(mode)+".png"), func(f *os.File) error {
		return render.Heatmap(f, grid, cfg.Output.CellPx)
	}); err != nil {
		return err
	}

	log.Info("batch report",
		"runs", report.Runs,
		"mean_ticks", report.MeanTicks,
		"min_ticks", report.MinTicks,
		"max_ticks", report.MaxTicks,
		"mean_average_human_age", report.MeanAverageHumanAge,
		"dir", dir)
	return nil
}

func writePlot(path string, draw func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := draw(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
