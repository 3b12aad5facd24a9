package main

import (
	"fmt"
	"strings"

	serpent "github.com/signadot/serpent-format/go-serpent"
	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p, a file of patch operations", cli.ErrUsage)
	}
	d, err := readFile(cc, cfg.PatchFile)
	if err != nil {
		return err
	}
	apply := func(y *ir.Node) (*ir.Node, error) {
		return serpent.Patch(y, d)
	}
	if !strings.HasSuffix(cfg.PatchFile, ".json") {
		p, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding patch %s: %w", cfg.PatchFile, err)
		}
		apply = func(y *ir.Node) (*ir.Node, error) {
			return serpent.PatchNode(y, p)
		}
	}
	opts := cfg.encOpts(cc.Out)
	return eachFile(cc, args, cfg.parseOpts(), func(_ string, y *ir.Node) error {
		res, err := apply(y)
		if err != nil {
			return err
		}
		return encodeNode(cc.Out, res, opts)
	})
}
