package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "config",
		Description: "config file (default $RIBS_CONFIG, else the user config dir)",
		Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ribs").
		WithSynopsis("ribs [opts] command [opts]").
		WithDescription("ribs is a tool for working with IPS binary patches.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ribsMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			RecordsCommand(cfg),
			CheckCommand(cfg),
			StatCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [opts] <patch> <target>").
		WithDescription("apply an IPS patch to a target file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func RecordsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RecordsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("records").
		WithAliases("r", "rec", "list", "ls").
		WithSynopsis("records [opts] [patches]").
		WithDescription("list the records of IPS patches").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return records(cfg, cc, args)
		})
	cfg.Records = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ck").
		WithSynopsis("check [opts] [patches]").
		WithDescription("check the framing and bounds of IPS patches").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func StatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stat, "stat").
		WithAliases("s", "st").
		WithSynopsis("stat [patches]").
		WithDescription("summarize IPS patches").
		WithRun(func(cc *cli.Context, args []string) error {
			return stat(cfg, cc, args)
		})
}
