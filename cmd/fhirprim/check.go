package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/primitive"
	"github.com/signadot/go-fhir/version"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// Manifest is a list of cases read by the check command.
type Manifest struct {
	// FHIR is the default version of cases which do not name one.
	FHIR  string `yaml:"fhir"`
	Cases []Case `yaml:"cases"`
}

// Case describes a primitive value and whether it is expected to be
// accepted. A value is accepted when it parses and validates.
type Case struct {
	Name    string `yaml:"name"`
	FHIR    string `yaml:"fhir"`
	Kind    string `yaml:"kind"`
	JSON    string `yaml:"json"`
	Element string `yaml:"element"`
	// Valid defaults to true.
	Valid *bool `yaml:"valid"`
}

func (c *Case) wantValid() bool {
	return c.Valid == nil || *c.Valid
}

// Outcome is the result of running a case.
type Outcome struct {
	Case *Case
	// Err is the parse, validation or setup error, if any.
	Err error
	// Wrapped is the JSON text the accepted value was written back as.
	Wrapped string
}

// Passed reports whether the case behaved as expected. Parse, validation
// and element errors count as rejecting a value, as does a kind the
// version does not have.
func (o *Outcome) Passed() bool {
	if o.Case.wantValid() {
		return o.Err == nil
	}
	return errors.Is(o.Err, primitive.ErrParse) ||
		errors.Is(o.Err, primitive.ErrValidation) ||
		errors.Is(o.Err, datatype.ErrBadElement) ||
		errors.Is(o.Err, primitive.ErrUnsupportedKind)
}

func readManifest(r io.Reader) (*Manifest, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(d, m); err != nil {
		return nil, err
	}
	return m, nil
}

// runCase evaluates c, using def as the version when c names none.
func runCase(c *Case, def version.Version, opts ...primitive.ParseOption) *Outcome {
	out := &Outcome{Case: c}
	v := def
	if c.FHIR != "" {
		pv, err := version.ParseVersion(c.FHIR)
		if err != nil {
			out.Err = err
			return out
		}
		v = pv
	}
	k, err := primitive.ParseKind(c.Kind)
	if err != nil {
		out.Err = fmt.Errorf("%w: %w", primitive.ErrUnsupportedKind, err)
		return out
	}
	res, err := evaluate(v, k, c.JSON, c.Element, opts...)
	if err != nil {
		out.Err = err
		return out
	}
	out.Wrapped = res.Wrapped.Value
	out.Err = res.ValidateErr
	return out
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least 1 manifest", cli.ErrUsage)
	}
	colors := cfg.colors(cc.Out)
	total, failed := 0, 0
	for _, file := range args {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		man, err := readManifest(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read manifest %s: %w", file, err)
		}
		def := cfg.FHIR
		if man.FHIR != "" {
			def, err = version.ParseVersion(man.FHIR)
			if err != nil {
				return fmt.Errorf("manifest %s: %w", file, err)
			}
		}
		for i := range man.Cases {
			out := runCase(&man.Cases[i], def, primitive.InLocation(cfg.Loc))
			total++
			if !out.Passed() {
				failed++
			}
			report(cc.Out, colors, file, i, out, cfg.Quiet)
		}
	}
	theLog.Info("check", "cases", total, "failed", failed)
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func report(w io.Writer, c *Colors, file string, i int, out *Outcome, quiet bool) {
	name := out.Case.Name
	if name == "" {
		name = fmt.Sprintf("%s[%d]", file, i)
	}
	if out.Passed() {
		if quiet {
			return
		}
		fmt.Fprintf(w, "%s %s\n", c.Pass("PASS"), name)
	} else {
		want := "valid"
		if !out.Case.wantValid() {
			want = "invalid"
		}
		fmt.Fprintf(w, "%s %s: want %s, got %v\n", c.Fail("FAIL"), name, want, errText(out.Err))
	}
	if out.Wrapped == "" {
		return
	}
	if diff := charDiff(strings.TrimSpace(out.Case.JSON), out.Wrapped, c); diff != "" {
		fmt.Fprintf(w, "  %s %s\n", c.Comment("wrapped:"), diff)
	}
}

func errText(err error) string {
	if err == nil {
		return "no error"
	}
	return err.Error()
}
