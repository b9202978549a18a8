// Package filter selects patch records with expr predicates.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mdpcardoso/ribs/debug"
	"github.com/mdpcardoso/ribs/record"
)

// Filter is a compiled boolean predicate over records.
type Filter struct {
	src  string
	prog *vm.Program
}

// Compile builds a predicate from an expr expression.  Expressions see:
//
//	pos    1-based record position in the patch
//	org    start offset in the target
//	end    offset one past the record's last byte
//	size   bytes written
//	kind   "literal" or "fill"
//	value  fill byte as an int, -1 for literals
//
// For example `kind == "fill" && size > 16`.
func Compile(src string) (*Filter, error) {
	prog, err := expr.Compile(src,
		expr.Env(env(1, record.NewFill(0, 0, 0))), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func env(pos int, r record.Record) map[string]any {
	value := -1
	if f, ok := r.(*record.Fill); ok {
		value = int(f.Value())
	}
	return map[string]any{
		"pos":   pos,
		"org":   r.Org(),
		"end":   record.End(r),
		"size":  r.Len(),
		"kind":  r.Kind().String(),
		"value": value,
	}
}

// Match evaluates the predicate against r at 1-based position pos.
func (f *Filter) Match(pos int, r record.Record) (bool, error) {
	out, err := expr.Run(f.prog, env(pos, r))
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	v, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: got %T, want bool", f.src, out)
	}
	if debug.Filter() {
		debug.Logf("filter: %q at %d: %v\n", f.src, pos, v)
	}
	return v, nil
}

func (f *Filter) String() string {
	return f.src
}
