package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: ascii/a, binary/b",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "v",
			Aliases:     []string{"version"},
			Description: "fbx version to write, e.g. 7.4 or 7400 (default: the document's)",
			Type:        cli.NamedFuncOpt(cfg.versionOpt, "(version)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "yaml file with compressionThreshold, compressionLevel, maxLineLength",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "fbx").
		WithSynopsis("fbx [opts] command [opts]").
		WithDescription("fbx writes FBX files from yaml tree descriptions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fbxMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			ViewCommand(cfg),
			ClassifyCommand(cfg),
			DiffCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [opts] [files]").
		WithDescription(encodeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeFiles(cfg, cc, args)
		})
}

const encodeDescription = `encode reads yaml tree descriptions and writes them as FBX, binary unless
-a or -O ascii is given.

A tree description looks like

  version: 7.4
  nodes:
  - id: Objects
    nodes:
    - id: Geometry
      props: [1000, "Geometry::Cube", "Mesh"]
      nodes:
      - id: Vertices
        props: [!doubles [0, 0, 1.5]]

Untagged numbers get the narrowest kind their text allows. The tags
!short !int !long !float !double and !raw (base64) force a scalar kind, and
!bytes !ints !longs !floats !doubles !bools make arrays.`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-where expr] [files]").
		WithDescription("view yaml tree descriptions as ascii FBX, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Classify, "classify").
		WithAliases("c").
		WithSynopsis("classify literal...").
		WithDescription("print the token kind chosen for numeric literals").
		WithRun(func(cc *cli.Context, args []string) error {
			return classify(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("diff two yaml tree descriptions node by node").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
