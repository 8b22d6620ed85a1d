// Package ga is a generational genetic algorithm for the Euclidean TSP.
//
// 🚀 What is in here?
//
//	Tour        — one candidate solution: an ordering of every registry city,
//	              with a lazily computed, explicitly invalidated length cache.
//	Population  — a fixed-size generation of tours.
//	Engine      — tournament selection, ordered crossover, swap mutation and
//	              the Evolve step that turns one generation into the next.
//	Solve       — a driver that runs a generation budget, records statistics
//	              and optionally polishes the winner with 2-opt.
//
// ⚙️ Usage:
//
//	reg := city.NewRegistry(city.New(60, 200), city.New(180, 200), city.New(80, 180))
//	eng, err := ga.NewEngine(reg, ga.DefaultOptions())
//	pop, err := eng.NewPopulation(50, true)
//	for i := 0; i < 100; i++ {
//		pop, err = eng.Evolve(pop)
//	}
//	best := pop.Fittest()
//	fmt.Println(best.Length(), best)
//
// Determinism:
//
//	All randomness flows from Options.Seed (0 selects a fixed default seed).
//	Evolve derives one independent stream per offspring slot, so the same
//	seed yields the same generations for every Options.Workers value.
//
// Concurrency:
//
//	Tours, Populations and Engines are not goroutine-safe. Evolve may fan out
//	over Options.Workers goroutines internally; the parent population is
//	treated as read-only for the whole step and its fitness caches are warmed
//	before any goroutine starts.
//
// Fitness policy:
//
//	Fitness is 1/Length. A tour of length 0 (zero or one city, or every city
//	at the same point) has fitness +Inf.
package ga
