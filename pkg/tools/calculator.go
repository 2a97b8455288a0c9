package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
)

// CalculatorArgs is the calculator's input schema.
type CalculatorArgs struct {
	Expression string `json:"expression" jsonschema_description:"Arithmetic expression to evaluate, e.g. (3.2e9 * 0.04) / 12"`
}

// CalculatorTool evaluates arithmetic expressions for agents. Expressions
// run in an empty environment: no variables, no side effects.
type CalculatorTool struct{}

// NewCalculatorTool creates the calculator.
func NewCalculatorTool() *CalculatorTool { return &CalculatorTool{} }

// Name implements Tool.
func (t *CalculatorTool) Name() string { return "calculator" }

// Description implements Tool.
func (t *CalculatorTool) Description() string {
	return "Evaluates an arithmetic expression and returns the numeric result."
}

// InputSchema implements Tool.
func (t *CalculatorTool) InputSchema() any { return schemaFor[CalculatorArgs]() }

// Execute implements Tool.
func (t *CalculatorTool) Execute(_ context.Context, call Call) (*Result, error) {
	var args CalculatorArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("invalid calculator arguments: %v", err)}}, nil
	}
	if args.Expression == "" {
		return &Result{Error: &ToolError{Message: "calculator requires an expression"}}, nil
	}

	program, err := expr.Compile(args.Expression, expr.Env(map[string]any{}))
	if err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("could not parse expression: %v", err)}}, nil
	}
	out, err := expr.Run(program, map[string]any{})
	if err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("could not evaluate expression: %v", err)}}, nil
	}

	return &Result{Content: fmt.Sprintf("%v", out)}, nil
}
