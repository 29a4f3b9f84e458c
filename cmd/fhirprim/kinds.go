package main

import (
	"fmt"

	"github.com/signadot/go-fhir/version"
	"github.com/signadot/go-fhir/versions"

	"github.com/scott-cotton/cli"
)

func kinds(cfg *KindsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Kinds.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: kinds takes no arguments", cli.ErrUsage)
	}
	vs := []version.Version{cfg.FHIR}
	if cfg.All {
		vs = version.All()
	}
	colors := cfg.colors(cc.Out)
	for _, v := range vs {
		reg, err := versions.Wrappers(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, colors.Comment("# %s (%s)", v, v.Release()))
		for _, e := range reg.Entries() {
			fmt.Fprintf(cc.Out, "%-10s %s\n", e.Wrapper.Kind(), e.Descriptor.FullName())
		}
	}
	return nil
}
