package main

import (
	"fmt"
	"io"

	"github.com/signadot/serpent-format/go-serpent/encode"
	"github.com/signadot/serpent-format/go-serpent/gomap"
	"github.com/signadot/serpent-format/go-serpent/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachFile(cc, args, cfg.parseOpts(), func(_ string, y *ir.Node) error {
		return encodeNode(cc.Out, y, opts)
	})
}

func encodeNode(w io.Writer, y *ir.Node, opts []encode.EncodeOption) error {
	v, err := gomap.FromIR(y)
	if err != nil {
		return err
	}
	return encodeValue(w, v, opts)
}

func encodeValue(w io.Writer, v any, opts []encode.EncodeOption) error {
	if err := encode.Encode(v, w, opts...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}
