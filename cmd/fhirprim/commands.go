package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/signadot/go-fhir/version"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg, err := newMainConfig()
	if err != nil {
		theLog.Warn("ignoring environment", "error", err)
		cfg = &MainConfig{FHIR: version.R4, Loc: time.UTC}
	}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "fhir",
			Description: "FHIR version: stu3, r4, r5 (default $" + envFHIR + " or r4)",
			Type:        cli.NamedFuncOpt(cfg.fhirOpt, "(version)"),
		},
		&cli.Opt{
			Name:        "tz",
			Description: "timezone of dates written without one (default $" + envTZ + " or UTC)",
			Type:        cli.NamedFuncOpt(cfg.tzOpt, "(zone)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "fhirprim").
		WithSynopsis("fhirprim [opts] command [opts]").
		WithDescription("fhirprim parses, validates and renders FHIR primitive values.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fhirprimMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			CheckCommand(cfg),
			KindsCommand(cfg))
}

func fhirprimMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("parse").
		WithAliases("p").
		WithSynopsis("parse [-e element] <kind> <json>").
		WithDescription("parse a primitive value, print its wrapped form and validate it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parse(cfg, cc, args)
		})
	cfg.Parse = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-q] <manifest.yaml>...").
		WithDescription("run the cases of YAML manifests, reporting each as pass or fail").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func KindsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KindsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("kinds").
		WithAliases("k").
		WithSynopsis("kinds [-all]").
		WithDescription("list primitive kinds and their types").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kinds(cfg, cc, args)
		})
	cfg.Kinds = cmd
	return cmd
}
