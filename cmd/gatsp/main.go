// Command gatsp searches for short tours through a set of cities with a
// genetic algorithm.
//
// Usage:
//
//	gatsp [-config run.yaml] [-tsplib file.tsp | -random N] [flags]
//
// Flags override the configuration file, which overrides the defaults. The
// report goes to stdout, logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gatsp/config"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// cliFlags holds values that exist only on the command line.
type cliFlags struct {
	configPath string
	verify     bool
}

// run is main without the process: it parses args, solves and reports.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, cli, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "gatsp: %v\n", err)
		return exitUsage
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "gatsp: %v\n", err)
		return exitUsage
	}
	defer logger.Sync() //nolint:errcheck

	if err = solve(ctx, cfg, cli, stdout, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		return exitError
	}

	return exitOK
}

// parseArgs layers defaults, the optional config file and explicit flags.
func parseArgs(args []string, stderr io.Writer) (config.Config, cliFlags, error) {
	var (
		cli   cliFlags
		fl    = config.Default()
		fs    = flag.NewFlagSet("gatsp", flag.ContinueOnError)
		level string
	)
	fs.SetOutput(stderr)

	fs.StringVar(&cli.configPath, "config", "", "YAML run configuration")
	fs.IntVar(&fl.Population, "population", fl.Population, "tours per generation")
	fs.IntVar(&fl.Generations, "generations", fl.Generations, "number of generations")
	fs.IntVar(&fl.Runs, "runs", fl.Runs, "independent runs")
	fs.Int64Var(&fl.Seed, "seed", fl.Seed, "base random seed (0 = fixed default)")
	fs.IntVar(&fl.Workers, "workers", fl.Workers, "goroutines per generation")
	fs.StringVar(&fl.Cities.TSPLIB, "tsplib", "", "TSPLIB instance file")
	fs.IntVar(&fl.Cities.Random, "random", fl.Cities.Random, "number of random cities")
	fs.StringVar(&fl.Output.Format, "format", fl.Output.Format, "report format (text, json)")
	fs.StringVar(&fl.Output.TourPNG, "tour-png", "", "write the best tour plot to this file")
	fs.StringVar(&fl.Output.ConvergencePNG, "convergence-png", "", "write the convergence plot to this file")
	fs.BoolVar(&fl.Polish, "polish", fl.Polish, "improve the final tour with 2-opt")
	fs.BoolVar(&cli.verify, "verify", false, "report the exact optimum (small instances) or a 1-tree lower bound")
	fs.StringVar(&level, "log-level", fl.Log.Level, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, cli, err
	}
	if fs.NArg() > 0 {
		return config.Config{}, cli, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if cli.configPath != "" {
		var err error
		if cfg, err = config.Load(cli.configPath); err != nil {
			return config.Config{}, cli, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "population":
			cfg.Population = fl.Population
		case "generations":
			cfg.Generations = fl.Generations
		case "runs":
			cfg.Runs = fl.Runs
		case "seed":
			cfg.Seed = fl.Seed
		case "workers":
			cfg.Workers = fl.Workers
		case "tsplib":
			cfg.Cities = config.Cities{TSPLIB: fl.Cities.TSPLIB}
		case "random":
			cfg.Cities = config.Cities{Random: fl.Cities.Random}
		case "format":
			cfg.Output.Format = fl.Output.Format
		case "tour-png":
			cfg.Output.TourPNG = fl.Output.TourPNG
		case "convergence-png":
			cfg.Output.ConvergencePNG = fl.Output.ConvergencePNG
		case "polish":
			cfg.Polish = fl.Polish
		case "log-level":
			cfg.Log.Level = level
		}
	})

	return cfg, cli, cfg.Validate()
}

// newLogger builds a JSON production logger or, in development mode, a
// console logger, both writing to w at the configured level.
func newLogger(lc config.Log, w io.Writer) (*zap.Logger, error) {
	level, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if lc.Development {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller()}
	if lc.Development {
		opts = append(opts, zap.Development())
	}

	return zap.New(core, opts...).Named("gatsp"), nil
}
