package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mdpcardoso/ribs/report"
)

func stat(cfg *StatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stat.Parse(cc, args)
	if err != nil {
		cfg.Stat.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	rn := report.New(cc.Out, cfg.mode())
	for i, name := range args {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s:\n", name)
		}
		p, err := readPatch(cc, name)
		if err != nil {
			return err
		}
		rn.Summary(p)
	}
	return nil
}
