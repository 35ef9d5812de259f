package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/token"
)

var errUnclassified = errors.New("some literals are not numbers")

func classify(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: fbx classify literal...", cli.ErrUsage)
	}
	var failed bool
	for _, lit := range args {
		tok, err := token.ParseNumber(lit)
		if err != nil {
			fmt.Fprintf(cc.Out, "%s\t-\t%v\n", lit, err)
			failed = true
			continue
		}
		b := token.NewASCIIBuffer(token.DefaultConfig())
		if _, err := tok.WriteASCII(format.DefaultVersion, b, 0, 0); err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\t%s\t%s\n", lit, tok.ValueType(), b.String())
	}
	if failed {
		return errUnclassified
	}
	return nil
}
