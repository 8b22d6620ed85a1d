package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/plotting"
	"github.com/katalvlaran/gatsp/report"
	"github.com/katalvlaran/gatsp/tsp"
)

// runSeed returns the seed of run k: the base seed for the first run and a
// derived stream for the others.
func runSeed(base int64, k int) int64 {
	if k == 0 {
		return base
	}

	return ga.DeriveSeed(base, uint64(k))
}

// instanceSeed returns the seed random cities are drawn from. It is kept
// apart from every run seed so the instance and the first population never
// share a stream.
func instanceSeed(base int64) int64 {
	return ga.DeriveSeed(base, math.MaxUint64)
}

// solve builds the instance, performs every run and writes the report and plots.
func solve(ctx context.Context, cfg config.Config, cli cliFlags, stdout io.Writer, log *zap.Logger) error {
	inst, err := cfg.BuildInstance(ga.NewRand(instanceSeed(cfg.Seed)))
	if err != nil {
		return err
	}
	reg, name := inst.Registry, inst.Name
	log.Info("instance loaded",
		zap.String("instance", name),
		zap.Int("cities", reg.Size()),
		zap.Int("population", cfg.Population),
		zap.Int("generations", cfg.Generations),
		zap.Int("runs", cfg.Runs),
	)

	var (
		runs    = make([]report.Run, 0, cfg.Runs)
		results = make([]ga.Result, 0, cfg.Runs)
	)
	for k := 0; k < cfg.Runs; k++ {
		seed := runSeed(cfg.Seed, k)
		res, err := solveOne(ctx, cfg, reg, k+1, seed, log)
		interrupted := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		if err != nil && (!interrupted || res.Best == nil) {
			return fmt.Errorf("run %d: %w", k+1, err)
		}

		run, rerr := report.NewRun(k+1, seed, res)
		if rerr != nil {
			return rerr
		}
		runs = append(runs, run)
		results = append(results, res)

		if interrupted {
			log.Warn("interrupted, reporting partial results", zap.Int("run", k+1), zap.Int("generations", res.Generations))
			break
		}
	}

	rep, err := report.New(name, reg.Size(), runs)
	if err != nil {
		return err
	}
	rep.WeightType = inst.WeightType
	if cli.verify {
		verify(ctx, reg, rep, log)
	}
	if err = report.Write(stdout, cfg.Output.Format, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return plot(cfg.Output, name, reg, rep, results, log)
}

// solveOne runs one seeded solve, logging progress through the generation hook.
func solveOne(ctx context.Context, cfg config.Config, reg *city.Registry, index int, seed int64, log *zap.Logger) (ga.Result, error) {
	var (
		opts  = cfg.SolveOptions()
		start = time.Now()
		best  float64
		rlog  = log.With(zap.Int("run", index), zap.Int64("seed", seed))
	)
	opts.Engine.Seed = seed
	opts.OnGeneration = func(gs ga.GenerationStats) {
		if ce := rlog.Check(zap.DebugLevel, "generation"); ce != nil {
			ce.Write(
				zap.Int("generation", gs.Generation),
				zap.Float64("best", gs.Best),
				zap.Float64("mean", gs.Mean),
				zap.Float64("stddev", gs.StdDev),
			)
		}
		if gs.Generation == 0 || gs.Best < best {
			if gs.Generation > 0 {
				rlog.Info("improved", zap.Int("generation", gs.Generation), zap.Float64("best", gs.Best))
			}
			best = gs.Best
		}
	}

	res, err := ga.Solve(ctx, reg, opts)
	if res.Best != nil {
		fields := []zap.Field{
			zap.Float64("initial", res.InitialBest),
			zap.Float64("final", res.BestLength),
			zap.Int("generations", res.Generations),
			zap.Duration("elapsed", time.Since(start)),
		}
		if res.Polished != nil {
			fields = append(fields, zap.Float64("polished", res.PolishedLength))
		}
		rlog.Info("run finished", fields...)
	}

	return res, err
}

// verify records the exact optimum for small instances and a 1-tree lower
// bound for the others.
func verify(ctx context.Context, reg *city.Registry, rep *report.Report, log *zap.Logger) {
	dist, err := reg.DistanceMatrix()
	if err != nil {
		log.Warn("verify skipped", zap.Error(err))
		return
	}
	best := rep.Best()

	if reg.Size() <= tsp.MaxExactCities {
		opt, err := tsp.Exact(dist)
		if err != nil {
			log.Warn("verify skipped", zap.Error(err))
			return
		}
		rep.Optimum = &opt.Cost
		log.Info("optimality gap",
			zap.Float64("best", best),
			zap.Float64("optimum", opt.Cost),
			zap.Float64("gap", report.Gap(best, opt.Cost)),
		)
		return
	}

	opts := tsp.DefaultBoundOptions()
	opts.Upper = best
	lb, err := tsp.LowerBound(ctx, dist, opts)
	if err != nil {
		log.Warn("lower bound skipped", zap.Error(err))
		return
	}
	rep.LowerBound = &lb
	log.Info("optimality gap bound",
		zap.Float64("best", best),
		zap.Float64("lower_bound", lb),
		zap.Float64("max_gap", report.Gap(best, lb)),
	)
}

// plot writes the requested images for the run with the shortest tour.
func plot(out config.Output, name string, reg *city.Registry, rep *report.Report, results []ga.Result, log *zap.Logger) error {
	if out.TourPNG == "" && out.ConvergencePNG == "" {
		return nil
	}

	best := 0
	for i, run := range rep.Runs {
		if run.Best() < rep.Runs[best].Best() {
			best = i
		}
	}
	run, res := rep.Runs[best], results[best]
	title := fmt.Sprintf("%s run %d", name, run.Index)

	if out.TourPNG != "" {
		order := run.Order
		if run.Polished != nil && run.PolishedDistance < run.FinalDistance {
			order = run.Polished
		}
		cities := make([]*city.City, len(order))
		for i, idx := range order {
			c, err := reg.Get(idx)
			if err != nil {
				return err
			}
			cities[i] = c
		}
		if err := plotting.Tour(cities, fmt.Sprintf("%s (%.2f)", title, run.Best()), out.TourPNG); err != nil {
			return err
		}
		log.Info("tour plot written", zap.String("path", out.TourPNG))
	}
	if out.ConvergencePNG != "" {
		if err := plotting.Convergence(res.History, title, out.ConvergencePNG); err != nil {
			return err
		}
		log.Info("convergence plot written", zap.String("path", out.ConvergencePNG))
	}

	return nil
}
