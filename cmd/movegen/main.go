package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cjeanneret/HexMove/internal/config"
	"github.com/cjeanneret/HexMove/internal/debug"
	"github.com/cjeanneret/HexMove/internal/logic/movement"
	"github.com/cjeanneret/HexMove/internal/render"
)

// Overrides holds CLI values that replace config values.
// Empty strings and -1 mean "use config".
type Overrides struct {
	Format     string
	Package    string
	Columns    int // -1 = use config
	DebugLevel int // -1 = use config
}

func main() {
	// CLI flags
	cfgPath := flag.String("config", "", "path to a configs/*.yaml file; empty uses the built-in 30/10/2 profile")
	format := flag.String("format", "", "output format: "+strings.Join(render.Formats(), ", "))
	pkg := flag.String("package", "", "package clause for -format go")
	columns := flag.Int("columns", -1, "wrap the literal every N values, 0 = single line (-1 = config value)")
	debugLevel := flag.Int("debug", -1, "debug level 0-4 on stderr (-1 = config value)")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	overrides := Overrides{
		Format:     *format,
		Package:    *pkg,
		Columns:    *columns,
		DebugLevel: *debugLevel,
	}
	if err := validateCLIOverrides(overrides); err != nil {
		log.Fatalf("invalid CLI override: %v", err)
	}
	applyOverrides(cfg, overrides)

	debug.Init(cfg.Defaults.DebugLevel)
	debug.Section("Initialization")
	debug.Value("Config path", displayPath(*cfgPath))
	debug.Value("Debug level", debug.Level())

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("generate table failed: %v", err)
	}
}

// loadConfig returns the built-in config when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// run generates the table described by cfg and writes it to w.
func run(cfg *config.Config, w io.Writer) error {
	profile := cfg.MovementProfile()
	if err := profile.Validate(); err != nil {
		return err
	}

	debug.Step(1, "Computing bounds")
	debug.PrintStruct("Profile", profile)
	lower, upper := profile.Bounds()
	debug.Verbose("Slow zones: 1..%d and %d..%d", lower, upper, profile.Angle-1)
	if lower >= upper {
		debug.Verbose("Slow zones overlap (lower=%d >= upper=%d): every interior step is duplicated", lower, upper)
	}

	debug.Step(2, "Generating movement table")
	debug.Live("Generating %d positions", profile.ExpectedCount())
	table := movement.Generate(profile)

	summary := table.Summary()
	debug.Summary("Movement Table Summary")
	debug.Table(table.Len(), table.Capacity())
	debug.Info("Entries: %d endpoint, %d slow, %d normal", summary.Endpoints, summary.Slow, summary.Normal)

	opts := cfg.RenderOptions()
	if err := table.CheckCapacity(); err != nil {
		if !cfg.Output.AllowCapacityMismatch {
			return err
		}
		debug.Error(err)
		opts.Size = table.Len()
	}

	debug.Step(3, "Rendering table")
	debug.Value("Format", opts.Format)
	if err := render.Write(w, table, opts); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	debug.Live("Wrote %d values", table.Len())
	return nil
}

// validateCLIOverrides checks the CLI values that are set.
func validateCLIOverrides(o Overrides) error {
	if o.Format != "" && o.Format != render.FormatC && o.Format != render.FormatGo {
		return fmt.Errorf("format must be one of %s, got %q", strings.Join(render.Formats(), ", "), o.Format)
	}
	if o.Columns < -1 {
		return fmt.Errorf("columns must be >= 0, got %d", o.Columns)
	}
	if o.Package != "" {
		if err := render.ValidatePackage(o.Package); err != nil {
			return fmt.Errorf("package: %w", err)
		}
	}
	if o.DebugLevel < -1 || o.DebugLevel > debug.LevelTrace {
		return fmt.Errorf("debug must be between 0 and %d, got %d", debug.LevelTrace, o.DebugLevel)
	}
	return nil
}

// applyOverrides mutates cfg with overrides. Only set values are applied.
func applyOverrides(cfg *config.Config, o Overrides) {
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.Package != "" {
		cfg.Output.Package = o.Package
	}
	if o.Columns >= 0 {
		cfg.Output.Columns = o.Columns
	}
	if o.DebugLevel >= 0 {
		cfg.Defaults.DebugLevel = o.DebugLevel
	}
}

func displayPath(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}
