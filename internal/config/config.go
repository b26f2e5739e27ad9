package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cjeanneret/HexMove/internal/debug"
	"github.com/cjeanneret/HexMove/internal/logic/movement"
	"github.com/cjeanneret/HexMove/internal/render"
)

// MaxConfigFileBytes caps the size of a config file.
const MaxConfigFileBytes = 64 * 1024

// ProfileConfig holds the sweep parameters.
type ProfileConfig struct {
	Angle          int `yaml:"angle"`           // total sweep in degrees
	SlowPercentage int `yaml:"slow_percentage"` // slow zone share of the sweep (0-100)
	SlowRepeat     int `yaml:"slow_repeat"`     // repeat count used by the capacity formula
}

// OutputConfig describes how the table is printed.
type OutputConfig struct {
	Format                string `yaml:"format"`                  // "c" or "go"
	Package               string `yaml:"package"`                 // package clause for "go"
	Columns               int    `yaml:"columns"`                 // values per line, 0 = single line
	AllowCapacityMismatch bool   `yaml:"allow_capacity_mismatch"` // log instead of failing when count != capacity
}

// DefaultsConfig contains generic parameters.
type DefaultsConfig struct {
	DebugLevel int `yaml:"debug_level"` // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
}

// Config aggregates all application configuration.
type Config struct {
	Profile  ProfileConfig  `yaml:"profile"`
	Output   OutputConfig   `yaml:"output"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// Default returns the built-in configuration: the 30/10/2 profile printed as C.
func Default() *Config {
	p := movement.DefaultProfile()
	return &Config{
		Profile: ProfileConfig{
			Angle:          p.Angle,
			SlowPercentage: p.SlowPercentage,
			SlowRepeat:     p.SlowRepeat,
		},
		Output: OutputConfig{
			Format:  render.FormatC,
			Package: render.DefaultPackage,
		},
	}
}

// ValidateConfigPath accepts only .yaml files located directly in a
// directory named "configs".
func ValidateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if filepath.Ext(abs) != ".yaml" {
		return fmt.Errorf("config file must have .yaml extension: %s", path)
	}
	if filepath.Base(filepath.Dir(abs)) != "configs" {
		return fmt.Errorf("config file must be in a configs/ directory: %s", path)
	}
	return nil
}

// Load reads a YAML file and returns the configuration.
// Sections missing from the file keep their Default() values.
func Load(path string) (*Config, error) {
	if err := ValidateConfigPath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxConfigFileBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if len(data) > MaxConfigFileBytes {
		return nil, fmt.Errorf("config file exceeds %d bytes", MaxConfigFileBytes)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config and fills empty output fields.
func (c *Config) Validate() error {
	if err := c.MovementProfile().Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	if c.Output.Format == "" {
		c.Output.Format = render.FormatC
	}
	if c.Output.Format != render.FormatC && c.Output.Format != render.FormatGo {
		return fmt.Errorf("output.format must be %q or %q, got %q", render.FormatC, render.FormatGo, c.Output.Format)
	}
	if c.Output.Package == "" {
		c.Output.Package = render.DefaultPackage
	}
	if err := render.ValidatePackage(c.Output.Package); err != nil {
		return fmt.Errorf("output.package: %w", err)
	}
	if c.Output.Columns < 0 {
		return fmt.Errorf("output.columns must be >= 0, got %d", c.Output.Columns)
	}
	if c.Defaults.DebugLevel < debug.LevelOff || c.Defaults.DebugLevel > debug.LevelTrace {
		return fmt.Errorf("defaults.debug_level must be between %d and %d, got %d", debug.LevelOff, debug.LevelTrace, c.Defaults.DebugLevel)
	}
	return nil
}

// MovementProfile returns the sweep parameters as a movement.Profile.
func (c *Config) MovementProfile() movement.Profile {
	return movement.Profile{
		Angle:          c.Profile.Angle,
		SlowPercentage: c.Profile.SlowPercentage,
		SlowRepeat:     c.Profile.SlowRepeat,
	}
}

// RenderOptions returns the output settings as render.Options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Format:  c.Output.Format,
		Package: c.Output.Package,
		Columns: c.Output.Columns,
	}
}
