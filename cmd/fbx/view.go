package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/fbx-format/go-fbx/encode"
	"github.com/signadot/fbx-format/go-fbx/eval"
	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	var filter *eval.Filter
	if cfg.Where != "" {
		filter, err = eval.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	w, err := encode.NewASCIIWriter(cc.Out, cfg.encOpts(cc.Out, format.ASCIIFormat)...)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		doc, err := cfg.readDoc(cc, file)
		if err != nil {
			return err
		}
		if filter != nil {
			nodes, err := filter.Select(doc)
			if err != nil {
				return err
			}
			doc = ir.NewDocument(doc.Version, nodes...)
		}
		if err := w.Write(doc); err != nil {
			return err
		}
	}
	return nil
}
