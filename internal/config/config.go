// Package config loads the navctl YAML configuration and builds the program
// logger from it.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"navctl/internal/nav"
	"navctl/internal/transition"
)

//go:embed navctl.yaml
var defaultConfig []byte

const maxFPS = 240

type (
	NavigationConfig struct {
		PreserveState     bool    `yaml:"preserve_state"`
		PreserveInstances bool    `yaml:"preserve_instances"`
		Tension           float64 `yaml:"tension"`
		Friction          float64 `yaml:"friction"`
		DefaultPush       string  `yaml:"default_push"`
		DefaultPop        string  `yaml:"default_pop"`
	}

	FramesConfig struct {
		FPS int `yaml:"fps"`
	}

	Config struct {
		Navigation NavigationConfig `yaml:"navigation"`
		Frames     FramesConfig     `yaml:"frames"`
		Logging    LoggingConfig    `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// Only fields we define are accepted, so yaml.Unmarshal is not enough.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		panic(fmt.Sprintf("embedded configuration is broken: %v", err))
	}
	return cfg
}

// Load reads the configuration at path on top of the defaults and validates
// the result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, cfg)
}

// Parse decodes data over cfg and validates the result.
func Parse(data []byte, cfg *Config) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, cfg.Validate()
	}
	cfg, err := unmarshalConfig(data, cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() (err error) {
	n := c.Navigation
	if n.Tension <= 0 {
		err = multierr.Append(err, fmt.Errorf("navigation.tension must be positive, got %v", n.Tension))
	}
	if n.Friction <= 0 {
		err = multierr.Append(err, fmt.Errorf("navigation.friction must be positive, got %v", n.Friction))
	}
	if _, er := transition.ParseKind(n.DefaultPush); er != nil {
		err = multierr.Append(err, fmt.Errorf("navigation.default_push: %w", er))
	}
	if _, er := transition.ParseKind(n.DefaultPop); er != nil {
		err = multierr.Append(err, fmt.Errorf("navigation.default_pop: %w", er))
	}
	if c.Frames.FPS < 1 || c.Frames.FPS > maxFPS {
		err = multierr.Append(err, fmt.Errorf("frames.fps must be within [1, %d], got %d", maxFPS, c.Frames.FPS))
	}
	err = multierr.Append(err, c.Logging.validate())
	return err
}

// ControllerConfig maps the navigation section onto a controller
// configuration. Views, scheduler, targets and host are left to the caller.
func (c *Config) ControllerConfig() (nav.Config, error) {
	push, err := transition.ParseKind(c.Navigation.DefaultPush)
	if err != nil {
		return nav.Config{}, fmt.Errorf("navigation.default_push: %w", err)
	}
	pop, err := transition.ParseKind(c.Navigation.DefaultPop)
	if err != nil {
		return nav.Config{}, fmt.Errorf("navigation.default_pop: %w", err)
	}
	return nav.Config{
		PreserveState:     c.Navigation.PreserveState,
		PreserveInstances: c.Navigation.PreserveInstances,
		Tension:           c.Navigation.Tension,
		Friction:          c.Navigation.Friction,
		DefaultPush:       push,
		DefaultPop:        pop,
		FPS:               c.Frames.FPS,
	}, nil
}

// Dump returns cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
