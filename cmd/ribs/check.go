package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mdpcardoso/ribs"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	targetSize := -1
	if cfg.Target != "" {
		fi, err := os.Stat(cfg.Target)
		if err != nil {
			return fmt.Errorf("could not stat %q: %w", cfg.Target, err)
		}
		targetSize = int(fi.Size())
	}
	bad := 0
	for _, name := range args {
		p, err := readPatch(cc, name)
		if err == nil && targetSize >= 0 {
			err = ribs.Validate(targetSize, p)
		}
		if err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", name, err)
			bad++
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok, %d records\n", name, len(p))
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
