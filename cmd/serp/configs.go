package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/serpent-format/go-serpent/encode"
	"github.com/signadot/serpent-format/go-serpent/format"
	"github.com/signadot/serpent-format/go-serpent/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	Compact   bool `cli:"name=compact desc='output in compact form'"`
	Header    bool `cli:"name=header desc='write the serpent header'"`
	Py26      bool `cli:"name=py26 desc='write sets as tuples for python 2.6'"`
	BytesRepr bool `cli:"name=bytes desc='write bytes as b literals instead of base64 dicts'"`
	Strict    bool `cli:"name=strict desc='require a serpent header on input'"`
	MaxLength int  `cli:"name=max desc='maximum input size in bytes'"`
	Quiet     bool `cli:"name=q desc='log errors only'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp *format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.RequireHeader())
	}
	if cfg.MaxLength > 0 {
		res = append(res, parse.MaxLength(cfg.MaxLength))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(!cfg.Compact),
		encode.EncodeHeader(cfg.Header),
		encode.SetLiterals(!cfg.Py26),
		encode.BytesRepr(cfg.BytesRepr),
	}
	if cfg.Color {
		color.NoColor = false
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	OutFormat format.Format
	Convert   *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='file holding the patch operations, json or serpent'"`
	Patch     *cli.Command
}
