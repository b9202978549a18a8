package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mdpcardoso/ribs/decode"
	"github.com/mdpcardoso/ribs/record"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func readPatch(cc *cli.Context, path string) (record.Patch, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	p, err := decode.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return p, nil
}

// writeFile writes d to path through a temp file and rename, so a failed
// write never leaves a partial file behind.
func writeFile(path string, d []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, d, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
