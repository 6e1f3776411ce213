// Package runner executes many independent outbreak runs on a worker pool.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"outbreak/internal/outbreak"
	"outbreak/internal/stats"
	"outbreak/internal/util"
)

type Options struct {
	Params  outbreak.Params
	Runs    int
	Seed    int64
	Workers int

	// FramesEvery > 0 hands every FramesEvery-th run's snapshots to OnFrames.
	FramesEvery int
	OnFrames    func(run int, frames []outbreak.Snapshot) error

	Logger *slog.Logger
}

func (o Options) animate(run int) bool {
	return o.FramesEvery > 0 && o.OnFrames != nil && run%o.FramesEvery == 0
}

// Batch runs opt.Runs simulations. Each run gets its own model and its own
// random source seeded by run index, so the aggregate does not depend on the
// worker count. The first failing run cancels the rest.
func Batch(ctx context.Context, opt Options) (*stats.Aggregate, error) {
	if opt.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", opt.Runs)
	}
	workers := max(opt.Workers, 1)
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	agg := stats.New(opt.Params.GridSize, opt.Runs)
	var mu sync.Mutex
	var firstErr error
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	wg := sync.WaitGroup{}
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				sum, err := runOne(i, opt)
				if err != nil {
					fail(fmt.Errorf("run %d (seed %d): %w", i, util.RunSeed(opt.Seed, i), err))
					continue
				}
				mu.Lock()
				err = agg.Add(i, sum)
				mu.Unlock()
				if err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for i := 0; i < opt.Runs; i++ {
		if i%10 == 0 {
			log.Debug("running seed", "run", i, "seed", util.RunSeed(opt.Seed, i))
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info("batch finished", "runs", agg.Runs(), "workers", workers)
	return agg, nil
}

func runOne(i int, opt Options) (outbreak.Summary, error) {
	m, err := outbreak.New(opt.Params, util.New(util.RunSeed(opt.Seed, i)))
	if err != nil {
		return outbreak.Summary{}, err
	}
	if !opt.animate(i) {
		return m.Run()
	}
	var frames []outbreak.Snapshot
	res, err := outbreak.RunSingle(m, false, func(s outbreak.Snapshot) { frames = append(frames, s) })
	if err != nil {
		return outbreak.Summary{}, err
	}
	if err := opt.OnFrames(i, frames); err != nil {
		return outbreak.Summary{}, fmt.Errorf("frames: %w", err)
	}
	return res.Summary, nil
}
