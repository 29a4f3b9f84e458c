package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/primitive"
	"github.com/signadot/go-fhir/version"
	"github.com/signadot/go-fhir/versions"

	"github.com/scott-cotton/cli"
)

func parse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: parse requires 2 arguments, a kind and a JSON value", cli.ErrUsage)
	}
	k, err := primitive.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	res, err := evaluate(cfg.FHIR, k, args[1], cfg.Element, primitive.InLocation(cfg.Loc))
	if err != nil {
		return err
	}
	printResult(cc.Out, cfg.colors(cc.Out), res)
	if res.ValidateErr != nil {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// result is the outcome of parsing, validating and wrapping one value.
type result struct {
	Wrapped     primitive.JSONPrimitive
	Element     string
	ValidateErr error
}

// evaluate parses text as a value of kind k in version v, merges the
// element JSON if any, validates the instance and wraps it. Parse and
// element errors are returned; validation errors are part of the result.
func evaluate(v version.Version, k primitive.Kind, text, element string, opts ...primitive.ParseOption) (*result, error) {
	h, err := versions.Handler(v)
	if err != nil {
		return nil, err
	}
	m, err := versions.New(v, k)
	if err != nil {
		return nil, err
	}
	if err := h.ParseInto([]byte(text), m, opts...); err != nil {
		return nil, err
	}
	if element != "" {
		ec, ok := m.(datatype.ElementCarrier)
		if !ok {
			return nil, fmt.Errorf("%s cannot carry an element", m.Descriptor().FullName())
		}
		if err := ec.MergeElementJSON([]byte(element)); err != nil {
			return nil, err
		}
	}
	res := &result{ValidateErr: h.ValidatePrimitive(m)}
	res.Wrapped, err = h.WrapPrimitive(m)
	if err != nil {
		return nil, err
	}
	if res.Wrapped.Element != nil {
		d, err := json.Marshal(res.Wrapped.Element)
		if err != nil {
			return nil, err
		}
		res.Element = string(d)
	}
	return res, nil
}

func printResult(w io.Writer, c *Colors, res *result) {
	fmt.Fprintf(w, "value: %s\n", res.Wrapped.Value)
	if res.Element != "" {
		fmt.Fprintf(w, "element: %s\n", res.Element)
	}
	if res.ValidateErr != nil {
		fmt.Fprintln(w, c.Fail("invalid: %v", res.ValidateErr))
		return
	}
	fmt.Fprintln(w, c.Pass("valid"))
}
