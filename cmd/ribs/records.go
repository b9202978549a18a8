package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mdpcardoso/ribs/filter"
	"github.com/mdpcardoso/ribs/report"
)

func records(cfg *RecordsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Records.Parse(cc, args)
	if err != nil {
		cfg.Records.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var flt *filter.Filter
	if cfg.Filter != "" {
		flt, err = filter.Compile(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	rn := report.New(cc.Out, cfg.mode())
	for i, name := range args {
		if i > 0 {
			fmt.Fprintf(cc.Out, "\n")
		}
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s:\n", name)
		}
		p, err := readPatch(cc, name)
		if err != nil {
			return err
		}
		for j, r := range p {
			if flt != nil {
				ok, err := flt.Match(j+1, r)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
			}
			rn.Record(j+1, r)
		}
	}
	return nil
}
