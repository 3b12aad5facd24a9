package main

import (
	"io"

	"github.com/signadot/serpent-format/go-serpent/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cc, args, cfg.parseOpts(), func(_ string, y *ir.Node) error {
		_, err := io.WriteString(cc.Out, y.Dump())
		return err
	})
}
