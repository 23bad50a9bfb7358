// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

// Program is a compiled formula. It is safe for concurrent use.
type Program struct {
	src  string
	vars []string
	prog *vm.Program
}

// Compile parses formula, checks its variables and function calls, and
// compiles it once for repeated evaluation.
func Compile(formula string) (*Program, error) {
	if strings.TrimSpace(formula) == "" {
		return nil, fmt.Errorf("empty formula: %w", ErrSyntax)
	}
	tree, err := parser.Parse(formula)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSyntax)
	}
	vars, err := inspect(tree)
	if err != nil {
		return nil, err
	}

	env := make(map[string]any, len(vars))
	for _, name := range vars {
		env[name] = 0.0
	}
	opts := []expr.Option{expr.Env(env)}
	for name, f := range functions {
		opts = append(opts, expr.Function(name, f.call))
	}
	prog, err := expr.Compile(formula, opts...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSyntax)
	}

	return &Program{src: formula, vars: vars, prog: prog}, nil
}

// Vars lists the variables referenced by the formula in first-use order.
func (p *Program) Vars() []string {
	out := make([]string, len(p.vars))
	copy(out, p.vars)
	return out
}

// String returns the source formula.
func (p *Program) String() string { return p.src }

// Eval evaluates the formula with vals[i] bound to Vars()[i]. It returns NaN
// when evaluation fails.
func (p *Program) Eval(vals ...float64) float64 {
	env := make(map[string]any, len(p.vars))
	for i, name := range p.vars {
		if i < len(vals) {
			env[name] = vals[i]
		}
	}
	v, err := p.run(&vm.VM{}, env)
	if err != nil {
		return math.NaN()
	}
	return v
}

// EvalMap evaluates the formula with variables looked up by name.
func (p *Program) EvalMap(vals map[string]float64) (float64, error) {
	env := make(map[string]any, len(p.vars))
	for _, name := range p.vars {
		v, ok := vals[name]
		if !ok {
			return 0, fmt.Errorf("%s: %w", name, ErrUnboundVar)
		}
		env[name] = v
	}
	return p.run(&vm.VM{}, env)
}

// run evaluates against env on machine and folds the result to a number.
func (p *Program) run(machine *vm.VM, env map[string]any) (float64, error) {
	out, err := machine.Run(p.prog, env)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", p.src, err)
	}
	return number(out)
}

// inspector collects band variables and validates calls while walking the
// parsed formula. The walk is post-order, so callee identifiers are only
// known once the whole tree has been seen.
type inspector struct {
	idents  []*ast.IdentifierNode
	callees map[ast.Node]bool
	err     error
}

func (in *inspector) Visit(node *ast.Node) {
	if in.err != nil {
		return
	}
	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		in.idents = append(in.idents, n)
	case *ast.CallNode:
		in.callees[n.Callee] = true
		name := ""
		if id, ok := n.Callee.(*ast.IdentifierNode); ok {
			name = id.Value
		}
		in.err = checkCall(name, len(n.Arguments))
	case *ast.BuiltinNode:
		in.err = checkCall(n.Name, len(n.Arguments))
	}
}

func inspect(tree *parser.Tree) ([]string, error) {
	in := &inspector{callees: map[ast.Node]bool{}}
	ast.Walk(&tree.Node, in)
	if in.err != nil {
		return nil, in.err
	}

	var vars []string
	seen := map[string]bool{}
	for _, id := range in.idents {
		if in.callees[id] {
			continue
		}
		if !isVarName(id.Value) {
			return nil, fmt.Errorf("%q is not a band variable: %w", id.Value, ErrSyntax)
		}
		if !seen[id.Value] {
			seen[id.Value] = true
			vars = append(vars, id.Value)
		}
	}
	return vars, nil
}

func checkCall(name string, args int) error {
	f, ok := functions[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownFunc)
	}
	if args < f.min || (f.max >= 0 && args > f.max) {
		return fmt.Errorf("%s: %d arguments: %w", name, args, ErrArity)
	}
	return nil
}

func isVarName(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}
