package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/fbx-format/go-fbx/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: fbx diff a b", cli.ErrUsage)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	from, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.readDoc(cc, args[1])
	if err != nil {
		return err
	}
	for _, c := range libdiff.Diff(from, to) {
		fmt.Fprintln(cc.Out, c)
	}
	return nil
}
