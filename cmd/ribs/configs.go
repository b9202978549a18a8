package main

import (
	"github.com/scott-cotton/cli"

	"github.com/mdpcardoso/ribs/config"
	"github.com/mdpcardoso/ribs/report"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color output'"`
	NoColor bool `cli:"name=nocolor desc='never color output'"`
	Verbose bool `cli:"name=v aliases=verbose desc='report each record applied'"`

	ConfigPath string
	Conf       *config.Config

	Main *cli.Command
}

func (cfg *MainConfig) configOpt(cc *cli.Context, a string) (any, error) {
	cfg.ConfigPath = a
	return a, nil
}

// mode resolves the color mode, flags over config.
func (cfg *MainConfig) mode() report.Mode {
	switch {
	case cfg.Color:
		return report.ModeAlways
	case cfg.NoColor:
		return report.ModeNever
	}
	return cfg.Conf.Color
}

func (cfg *MainConfig) verbose() bool {
	return cfg.Verbose || cfg.Conf.Verbose
}

type ApplyConfig struct {
	*MainConfig
	Out     string `cli:"name=o desc='output file (default stdout)'"`
	InPlace bool   `cli:"name=w desc='write the result back over the target'"`
	Backup  bool   `cli:"name=backup aliases=bak desc='keep a .bak copy of the target with -w'"`
	Extend  bool   `cli:"name=extend aliases=grow desc='zero-extend the target to fit records'"`
	DryRun  bool   `cli:"name=n aliases=dry-run desc='apply without writing anything'"`

	Apply *cli.Command
}

func (cfg *ApplyConfig) extend() bool {
	return cfg.Extend || cfg.Conf.Policy == config.PolicyExtend
}

func (cfg *ApplyConfig) backup() bool {
	return cfg.Backup || cfg.Conf.Backup
}

type RecordsConfig struct {
	*MainConfig
	Filter string `cli:"name=filter aliases=f desc='expr predicate selecting records'"`

	Records *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Target string `cli:"name=target aliases=t desc='check records fit this file'"`

	Check *cli.Command
}

type StatConfig struct {
	*MainConfig
	Stat *cli.Command
}
