// Package config loads the settings shared by every command from a YAML file.
package config

import (
	"os"
	"path/filepath"

	"adversarial/game"
	"adversarial/searcher"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const FileName = "config.yaml"

// DefaultPath is the config file under the user's XDG config directory.
var DefaultPath = filepath.Join(xdg.ConfigHome, "adversarial", FileName)

type Config struct {
	Depth      int        `yaml:"depth"`
	Heuristic  string     `yaml:"heuristic"`
	Goroutines int        `yaml:"goroutines"`
	Strict     bool       `yaml:"strict"`
	LogLevel   string     `yaml:"log_level"`
	Experiment Experiment `yaml:"experiment"`
}

type Experiment struct {
	Games     int    `yaml:"games"`
	OutputDir string `yaml:"output_dir"`
}

func Default() Config {
	return Config{
		Depth:      searcher.DefaultDepth,
		Heuristic:  "zero",
		Goroutines: 1,
		LogLevel:   "info",
		Experiment: Experiment{
			Games:     10,
			OutputDir: "experiments",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := c.Validate(); err != nil {
		return c, errors.Wrapf(err, "invalid config %s", path)
	}
	return c, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Depth < 0 {
		result = multierror.Append(result, errors.Errorf("depth must not be negative, got %d", c.Depth))
	}
	if c.Goroutines < 1 {
		result = multierror.Append(result, errors.Errorf("goroutines must be at least 1, got %d", c.Goroutines))
	}
	if _, err := game.HeuristicByName(c.Heuristic); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "log_level"))
	}
	if c.Experiment.Games < 1 {
		result = multierror.Append(result, errors.Errorf("experiment.games must be at least 1, got %d", c.Experiment.Games))
	}
	if c.Experiment.OutputDir == "" {
		result = multierror.Append(result, errors.New("experiment.output_dir must not be empty"))
	}

	return result.ErrorOrNil()
}

// SearchOptions returns the searcher options the config describes.
func (c Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithDepth(c.Depth),
		searcher.WithGoroutines(c.Goroutines),
	}
	if c.Strict {
		options = append(options, searcher.WithStrictModel())
	}
	return options
}

func (c Config) Searcher() (*searcher.Searcher[game.Game], error) {
	heuristic, err := game.HeuristicByName(c.Heuristic)
	if err != nil {
		return nil, err
	}
	return searcher.NewSearcher(game.Model(heuristic), c.SearchOptions()...), nil
}
