// Package gatsp searches for short closed tours through points in the plane
// with a generational genetic algorithm.
//
// 🚀 What is gatsp?
//
//	A small toolkit around one classic idea: keep a population of tours,
//	breed the fittest, mutate a little, repeat.
//		• Cities: immutable points, registries, TSPLIB EUC_2D/CEIL_2D/ATT input
//		• GA core: tournament selection, ordered crossover, swap mutation, elitism
//		• Determinism: seeded PCG streams, identical output for any worker count
//		• Local search: optional 2-opt polish of the winner
//		• Ground truth: Held–Karp for instances of up to 16 cities
//		• Output: text/JSON reports, multi-run percentiles, PNG plots
//
// Packages:
//
//	city/      — City, Registry, TSPLIB loader, gonum distance matrix
//	ga/        — Tour, Population, Engine (Evolve), Solve driver, statistics
//	tsp/       — permutation helpers, tour cost, 2-opt, exact Held–Karp
//	plotting/  — tour and convergence plots (gonum/plot)
//	report/    — run summaries (montanaflynn/stats), text and JSON writers
//	config/    — YAML configuration (gopkg.in/yaml.v3)
//	cmd/gatsp/ — command line front end with zap logging
//
// Quick start:
//
//	reg := city.NewRegistry(city.New(60, 200), city.New(180, 200), city.New(80, 180))
//	res, err := ga.Solve(ctx, reg, ga.DefaultSolveOptions())
//	fmt.Println(res.InitialBest, res.BestLength, res.Best)
//
// or from the shell:
//
//	go run ./cmd/gatsp -config testdata/config.yaml -tour-png tour.png
package gatsp
