package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/report"
	"github.com/katalvlaran/gatsp/tsp"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// DefaultRandomCities is the size of the random instance used when no other
// city source is configured.
const DefaultRandomCities = 20

// Config is one run configuration.
type Config struct {
	Population  int    `yaml:"population"`
	Generations int    `yaml:"generations"`
	Runs        int    `yaml:"runs"`
	Seed        int64  `yaml:"seed"`
	Workers     int    `yaml:"workers"`
	GA          GA     `yaml:"ga"`
	Polish      bool   `yaml:"polish"`
	Cities      Cities `yaml:"cities"`
	Output      Output `yaml:"output"`
	Log         Log    `yaml:"log"`
}

// GA holds the operator parameters.
type GA struct {
	MutationRate   float64 `yaml:"mutation_rate"`
	TournamentSize int     `yaml:"tournament_size"`
	Elitism        bool    `yaml:"elitism"`
}

// Cities selects the instance.
type Cities struct {
	TSPLIB string  `yaml:"tsplib"`
	Points []Point `yaml:"points"`
	Random int     `yaml:"random"`
}

// Point is an explicit city; a nil axis is drawn at random.
type Point struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

// Output selects the report format and optional plot files.
type Output struct {
	Format         string `yaml:"format"`
	TourPNG        string `yaml:"tour_png"`
	ConvergencePNG string `yaml:"convergence_png"`
}

// Log configures the CLI logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the classic run: 50 tours, 100 generations, one run of
// DefaultRandomCities random cities, text output, info logging.
func Default() Config {
	opts := ga.DefaultOptions()

	return Config{
		Population:  ga.DefaultPopulationSize,
		Generations: ga.DefaultGenerations,
		Runs:        1,
		Workers:     opts.Workers,
		GA: GA{
			MutationRate:   opts.MutationRate,
			TournamentSize: opts.TournamentSize,
			Elitism:        opts.Elitism,
		},
		Cities: Cities{Random: DefaultRandomCities},
		Output: Output{Format: report.FormatText},
		Log:    Log{Level: "info"},
	}
}

// Load reads and validates the file at path.
//
// Errors: os errors, those of Decode.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Cities.TSPLIB != "" && !filepath.IsAbs(cfg.Cities.TSPLIB) {
		cfg.Cities.TSPLIB = filepath.Join(filepath.Dir(path), cfg.Cities.TSPLIB)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads one YAML document from r over Default and validates it.
// An empty document yields Default.
//
// Errors: yaml errors (including unknown keys), ErrInvalid.
func Decode(r io.Reader) (Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Validate checks every field; the first violation is returned wrapped in
// ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Population <= 0:
		return fmt.Errorf("%w: population must be positive, got %d", ErrInvalid, c.Population)
	case c.Generations < 0:
		return fmt.Errorf("%w: generations must be non-negative, got %d", ErrInvalid, c.Generations)
	case c.Runs < 1:
		return fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalid, c.Runs)
	case c.Cities.TSPLIB == "" && len(c.Cities.Points) == 0 && c.Cities.Random <= 0:
		return fmt.Errorf("%w: cities: no tsplib, points or positive random count", ErrInvalid)
	}
	if err := c.SolveOptions().Engine.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Output.Format {
	case report.FormatText, report.FormatJSON:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}

	return nil
}

// ZapLevel parses Level ("debug", "info", "warn", "error", ...).
func (l Log) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(l.Level)
}

// SolveOptions maps the configuration onto ga.SolveOptions. Seed is the
// base seed; multi-run callers derive per-run seeds from it.
func (c Config) SolveOptions() ga.SolveOptions {
	return ga.SolveOptions{
		Engine: ga.Options{
			MutationRate:   c.GA.MutationRate,
			TournamentSize: c.GA.TournamentSize,
			Elitism:        c.GA.Elitism,
			PopulationSize: c.Population,
			Seed:           c.Seed,
			Workers:        c.Workers,
		},
		PopulationSize: c.Population,
		Generations:    c.Generations,
		Polish:         c.Polish,
		PolishOptions:  tsp.DefaultOptions(),
	}
}

// Instance is the materialised city set of a configuration.
type Instance struct {
	Registry *city.Registry
	Name     string

	// WeightType is the EDGE_WEIGHT_TYPE declared by a TSPLIB file and is
	// empty for generated cities. Lengths are plain Euclidean whatever it says.
	WeightType string
}

// BuildInstance materialises the configured cities and names them. rng is
// only drawn from for random cities and axes.
//
// Errors: city.LoadTSPLIB and city.Registry.Add errors.
func (c Config) BuildInstance(rng *rand.Rand) (Instance, error) {
	switch {
	case c.Cities.TSPLIB != "":
		reg, hdr, err := city.LoadTSPLIB(c.Cities.TSPLIB)
		if err != nil {
			return Instance{}, err
		}
		name := hdr.Name
		if name == "" {
			name = filepath.Base(c.Cities.TSPLIB)
		}
		return Instance{Registry: reg, Name: name, WeightType: hdr.EdgeWeightType}, nil

	case len(c.Cities.Points) > 0:
		reg := city.NewRegistry()
		for _, p := range c.Cities.Points {
			if err := reg.Add(city.FromCoords(p.X, p.Y, rng)); err != nil {
				return Instance{}, err
			}
		}
		return Instance{Registry: reg, Name: fmt.Sprintf("points-%d", reg.Size())}, nil

	default:
		reg := city.NewRegistry()
		for i := 0; i < c.Cities.Random; i++ {
			if err := reg.Add(city.Random(rng)); err != nil {
				return Instance{}, err
			}
		}
		return Instance{Registry: reg, Name: fmt.Sprintf("random-%d", reg.Size())}, nil
	}
}
