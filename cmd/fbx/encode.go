package main

import (
	"fmt"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/signadot/fbx-format/go-fbx/encode"
	"github.com/signadot/fbx-format/go-fbx/format"
)

func encodeFiles(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	w, err := encode.NewWriter(cc.Out, cfg.encOpts(cc.Out, cfg.outFormat(format.BinaryFormat))...)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		doc, err := cfg.readDoc(cc, file)
		if err != nil {
			return err
		}
		if err := w.Write(doc); err != nil {
			return err
		}
	}
	return nil
}
