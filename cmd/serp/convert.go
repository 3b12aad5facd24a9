package main

import (
	"github.com/signadot/serpent-format/go-serpent/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachFile(cc, args, cfg.parseOpts(), func(file string, y *ir.Node) error {
		if cfg.OutFormat.IsSerpent() {
			return encodeNode(cc.Out, y, opts)
		}
		if t, ok := lossy(y); ok {
			theLog.Warn("conversion loses type information", "file", file, "type", t, "format", cfg.OutFormat)
		}
		d, err := ir.ToJSON(y)
		if err != nil {
			return err
		}
		if cfg.OutFormat.IsYAML() {
			d, err = yaml.JSONToYAML(d)
			if err != nil {
				return err
			}
		} else {
			d = append(d, '\n')
		}
		_, err = cc.Out.Write(d)
		return err
	})
}

// lossy returns the first type in y which json and yaml cannot
// represent.
func lossy(y *ir.Node) (ir.Type, bool) {
	switch y.Type {
	case ir.TupleType, ir.SetType, ir.BytesType, ir.ComplexType:
		return y.Type, true
	}
	for _, f := range y.Fields {
		if t, ok := lossy(f); ok {
			return t, ok
		}
	}
	for _, v := range y.Values {
		if t, ok := lossy(v); ok {
			return t, ok
		}
	}
	return 0, false
}
