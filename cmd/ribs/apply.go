package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mdpcardoso/ribs"
	"github.com/mdpcardoso/ribs/report"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply requires 2 arguments, a patch file and a target file", cli.ErrUsage)
	}
	if cfg.Out != "" && cfg.InPlace {
		return fmt.Errorf("%w: must specify at most one of -o -w", cli.ErrUsage)
	}
	patchName, targetName := args[0], args[1]
	if cfg.InPlace && targetName == "-" {
		return fmt.Errorf("%w: -w requires a target file, not stdin", cli.ErrUsage)
	}
	p, err := readPatch(cc, patchName)
	if err != nil {
		return err
	}
	base, err := readInput(cc, targetName)
	if err != nil {
		return err
	}
	// Apply mutates base in place under the strict policy, so the backup
	// copy is taken first.
	var orig []byte
	if cfg.InPlace && cfg.backup() && !cfg.DryRun {
		orig = append([]byte(nil), base...)
	}
	opts := []ribs.ApplyOpt{ribs.ApplyExtend(cfg.extend())}
	if cfg.verbose() {
		rn := report.New(os.Stderr, cfg.mode())
		opts = append(opts, ribs.ApplyTrace(rn.Record))
	}
	out, err := ribs.Apply(base, p, opts...)
	if err != nil {
		return fmt.Errorf("error applying %s to %s: %w", patchName, targetName, err)
	}
	if cfg.DryRun {
		return nil
	}
	if orig != nil {
		if err := writeFile(targetName+".bak", orig); err != nil {
			return fmt.Errorf("error writing backup: %w", err)
		}
	}
	dest := cfg.Out
	if cfg.InPlace {
		dest = targetName
	}
	if dest == "" || dest == "-" {
		_, err := cc.Out.Write(out)
		return err
	}
	return writeFile(dest, out)
}
