package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/fbx-format/go-fbx/encode"
	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/token"
)

type MainConfig struct {
	A     bool `cli:"name=a aliases=ascii desc='write ascii fbx'"`
	B     bool `cli:"name=b aliases=binary desc='write binary fbx'"`
	Color bool `cli:"name=color desc='encode ascii with color'"`

	OutFormat *format.Format
	Version   *format.Version
	Config    *token.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) versionOpt(_ *cli.Context, a string) (any, error) {
	v, err := format.ParseVersion(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Version = &v
	return v, nil
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	c, err := token.LoadConfig(a)
	if err != nil {
		return nil, err
	}
	cfg.Config = c
	return a, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// outFormat is the format selected by -a, -b or -O, or def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.A:
		return format.ASCIIFormat
	case cfg.B:
		return format.BinaryFormat
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeFormat(f)}
	if cfg.Config != nil {
		res = append(res, encode.WithConfig(*cfg.Config))
	}
	if !f.IsASCII() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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
	file, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(file.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type EncodeConfig struct {
	*MainConfig
	Gops bool `cli:"name=gops desc='run a gops agent while encoding, for inspecting long runs'"`

	Encode *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only show nodes matching an expr expression'"`

	View *cli.Command
}

type ClassifyConfig struct {
	*MainConfig

	Classify *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
