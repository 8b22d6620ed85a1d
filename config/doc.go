// Package config loads and validates the YAML run configuration.
//
// A document looks like:
//
//	population: 50
//	generations: 100
//	runs: 1
//	seed: 0
//	workers: 1
//	ga: {mutation_rate: 0.015, tournament_size: 5, elitism: true}
//	polish: false
//	cities:
//	  tsplib: xqf131.tsp           # or
//	  points: [{x: 60, y: 200}, {x: 180}, {}]
//	  random: 20
//	output: {format: text, tour_png: "", convergence_png: ""}
//	log: {level: info, development: false}
//
// Absent keys keep their Default value; unknown keys are rejected. City
// sources are tried in the order tsplib, points, random. A relative tsplib
// path is resolved against the directory of the configuration file, and a
// point axis that is omitted is drawn at random like city.Random.
package config
