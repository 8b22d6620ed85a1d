package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrFormat indicates an unknown output format.
var ErrFormat = errors.New("report: format must be text or json")

// Write dispatches on format.
//
// Errors: ErrFormat, writer errors.
func Write(w io.Writer, format string, r *Report) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return ErrFormat
	}
}

// WriteText prints every run and, when present, the summary, the optimum
// and the lower bound.
// Distances are printed with thousands separators and at most two
// decimals (truncated).
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	multi := len(r.Runs) > 1

	for i, run := range r.Runs {
		if multi {
			if i > 0 {
				bw.WriteByte('\n')
			}
			fmt.Fprintf(bw, "Run %d (seed %d, %s generations)\n",
				run.Index, run.Seed, humanize.Comma(int64(run.Generations)))
		}
		fmt.Fprintf(bw, "Initial distance: %s\n", distance(run.InitialDistance))
		fmt.Fprintf(bw, "Final distance: %s\n", distance(run.FinalDistance))
		if run.Polished != nil {
			fmt.Fprintf(bw, "Polished distance: %s\n", distance(run.PolishedDistance))
		}
		fmt.Fprintf(bw, "Solution:\n%s\n", run.Solution)
	}

	if s := r.Summary; s != nil {
		fmt.Fprintf(bw, "\nSummary of %d runs on %s (%d cities)\n", s.Runs, r.Instance, r.Cities)
		fmt.Fprintf(bw, "  min %s  median %s  mean %s  p90 %s  max %s  stddev %s\n",
			distance(s.Min), distance(s.Median), distance(s.Mean),
			distance(s.P90), distance(s.Max), distance(s.StdDev))
	}
	if r.WeightType != "" {
		fmt.Fprintf(bw, "Distances: unrounded Euclidean (file declares %s)\n", r.WeightType)
	}
	if r.Optimum != nil {
		fmt.Fprintf(bw, "Optimum: %s (gap %.2f%%)\n", distance(*r.Optimum), Gap(r.Best(), *r.Optimum)*100)
	}
	if r.LowerBound != nil {
		fmt.Fprintf(bw, "Lower bound: %s (gap at most %.2f%%)\n", distance(*r.LowerBound), Gap(r.Best(), *r.LowerBound)*100)
	}

	return bw.Flush()
}

// WriteJSON encodes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// Gap returns the relative excess of length over optimum, or 0 when optimum is 0.
func Gap(length, optimum float64) float64 {
	if optimum == 0 {
		return 0
	}

	return (length - optimum) / optimum
}

func distance(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}
