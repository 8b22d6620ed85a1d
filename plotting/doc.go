// Package plotting renders tours and convergence histories as images.
//
// Both entry points build a gonum/plot figure and save it with the format
// implied by the file extension (.png, .svg, .pdf, ...). They are meant for
// offline inspection of a run:
//
//	Tour        — the cities as points and the closed route through them;
//	Convergence — best and mean tour length per generation.
//
// Neither function keeps state; both are safe for concurrent use with
// distinct output paths.
package plotting
