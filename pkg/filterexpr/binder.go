// Package filterexpr compiles user-supplied CEL filter expressions over a
// whitelisted variable schema into predicates evaluated against in-memory
// records.
package filterexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
)

// Schema declares the variables a filter may reference and their types.
type Schema map[string]*cel.Type

// Program is a compiled filter ready for repeated evaluation.
type Program struct {
	prg cel.Program
}

// Compile parses and type-checks the filter against the schema. The
// expression must evaluate to a boolean.
func Compile(filter string, schema Schema) (*Program, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil, errors.New("filter must not be empty")
	}
	if len(schema) == 0 {
		return nil, errors.New("filter schema has no fields defined")
	}

	opts := make([]cel.EnvOption, 0, len(schema)+1)
	for name, typ := range schema {
		opts = append(opts, cel.Variable(name, typ))
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("build filter env: %w", err)
	}

	ast, issues := env.Compile(filter)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("filter must be a boolean expression, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build filter program: %w", err)
	}
	return &Program{prg: prg}, nil
}

// Eval runs the filter against one record's variable bindings. Missing
// schema variables must still be present in vars (zero values are fine);
// cel treats absent variables as an error.
func (p *Program) Eval(vars map[string]any) (bool, error) {
	out, _, err := p.prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("evaluate filter: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter returned %T, expected bool", out.Value())
	}
	return b, nil
}
