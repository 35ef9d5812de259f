package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/fbx-format/go-fbx/debug"
	"github.com/signadot/fbx-format/go-fbx/ir"
)

// Filter is a compiled node selection expression. It is safe for
// concurrent use.
type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string { return f.src }

// Match evaluates the filter on n found at path.
func (f *Filter) Match(n *ir.Node, path string) (bool, error) {
	res, err := expr.Run(f.prg, NewEnv(n, path))
	if err != nil {
		return false, fmt.Errorf("filter %q at %s: %w", f.src, path, err)
	}
	ok, _ := res.(bool)
	if debug.Filter() {
		debug.Logf("filter %q at %s: %t\n", f.src, path, ok)
	}
	return ok, nil
}

// Select returns the topmost nodes of d matching f.
func (f *Filter) Select(d *ir.Document) ([]*ir.Node, error) {
	return ir.Select(d, f.Match)
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
