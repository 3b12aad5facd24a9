package main

import (
	"fmt"

	serpent "github.com/signadot/serpent-format/go-serpent"
	"github.com/signadot/serpent-format/go-serpent/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires an expression", cli.ErrUsage)
	}
	if args[0] == "" {
		return fmt.Errorf("%w: invalid expression \"\"", cli.ErrUsage)
	}
	expression := args[0]
	opts := cfg.encOpts(cc.Out)
	return eachFile(cc, args[1:], cfg.parseOpts(), func(_ string, y *ir.Node) error {
		res, err := serpent.Query(y, expression)
		if err != nil {
			return err
		}
		return encodeValue(cc.Out, res, opts)
	})
}
