package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/go-fhir/version"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	envFHIR = "FHIRPRIM_FHIR"
	envTZ   = "FHIRPRIM_TZ"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='color results (default: when stdout is a terminal)'"`

	FHIR version.Version
	Loc  *time.Location

	Main *cli.Command
}

// newMainConfig returns a config with defaults taken from the environment.
func newMainConfig() (*MainConfig, error) {
	cfg := &MainConfig{FHIR: version.R4, Loc: time.UTC}
	if v := os.Getenv(envFHIR); v != "" {
		fv, err := version.ParseVersion(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envFHIR, err)
		}
		cfg.FHIR = fv
	}
	if v := os.Getenv(envTZ); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envTZ, err)
		}
		cfg.Loc = loc
	}
	return cfg, nil
}

func (cfg *MainConfig) fhirOpt(_ *cli.Context, a string) (any, error) {
	v, err := version.ParseVersion(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.FHIR = v
	return v, nil
}

func (cfg *MainConfig) tzOpt(_ *cli.Context, a string) (any, error) {
	loc, err := time.LoadLocation(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Loc = loc
	return loc, nil
}

// colors returns the palette for w, enabling color when requested with
// -color or, if -color was not given, when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	on := cfg.Color
	colorSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorSet = opt.Value != nil
			break
		}
	}
	if !colorSet {
		f, ok := w.(*os.File)
		on = ok && isatty.IsTerminal(f.Fd())
	}
	color.NoColor = !on
	return NewColors()
}

type ParseConfig struct {
	*MainConfig
	Element string `cli:"name=e aliases=element desc='element JSON merged before validation'"`

	Parse *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failing cases'"`

	Check *cli.Command
}

type KindsConfig struct {
	*MainConfig
	All bool `cli:"name=all aliases=a desc='list the kinds of every version'"`

	Kinds *cli.Command
}
