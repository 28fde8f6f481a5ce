// Package calculator is the arithmetic tool catalog served over MCP.
package calculator

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/sjzar/mcpcalc/internal/mcp"
	"github.com/sjzar/mcpcalc/pkg/util"
)

// Operations accepted by the calculate tool.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

const divideByZeroText = "Error: cannot divide by zero"

type handler func(args mcp.M) (*mcp.ToolsCallResponse, error)

// Catalog implements mcp.Catalog. Descriptors are immutable after New;
// listing order is registration order.
type Catalog struct {
	tools  []mcp.Tool
	byName map[string]handler
}

func New() *Catalog {
	c := &Catalog{byName: make(map[string]handler)}

	c.register(mcp.Tool{
		Name:        "add",
		Description: "Add two numbers",
		InputSchema: operandSchema(),
	}, c.add)
	c.register(mcp.Tool{
		Name:        "subtract",
		Description: "Subtract the second number from the first",
		InputSchema: operandSchema(),
	}, c.subtract)
	c.register(mcp.Tool{
		Name:        "multiply",
		Description: "Multiply two numbers",
		InputSchema: operandSchema(),
	}, c.multiply)
	c.register(mcp.Tool{
		Name:        "divide",
		Description: "Divide the first number by the second",
		InputSchema: operandSchema(),
	}, c.divide)
	c.register(mcp.Tool{
		Name:        "calculate",
		Description: "Perform a basic arithmetic operation on two numbers",
		InputSchema: calculateSchema(),
	}, c.calculate)

	return c
}

func (c *Catalog) register(t mcp.Tool, h handler) {
	c.tools = append(c.tools, t)
	c.byName[t.Name] = h
}

func (c *Catalog) ListTools() []mcp.Tool {
	return c.tools
}

func (c *Catalog) CallTool(name string, arguments mcp.M) (*mcp.ToolsCallResponse, error) {
	h, ok := c.byName[name]
	if !ok {
		return nil, mcp.NewError(mcp.CodeInvalidParams, "unknown tool: %s", name)
	}
	return h(arguments)
}

func (c *Catalog) add(args mcp.M) (*mcp.ToolsCallResponse, error) {
	a, b, err := operands(args)
	if err != nil {
		return nil, err
	}
	return mcp.NewTextResult(util.FormatFloat(a + b)), nil
}

func (c *Catalog) subtract(args mcp.M) (*mcp.ToolsCallResponse, error) {
	a, b, err := operands(args)
	if err != nil {
		return nil, err
	}
	return mcp.NewTextResult(util.FormatFloat(a - b)), nil
}

func (c *Catalog) multiply(args mcp.M) (*mcp.ToolsCallResponse, error) {
	a, b, err := operands(args)
	if err != nil {
		return nil, err
	}
	return mcp.NewTextResult(util.FormatFloat(a * b)), nil
}

func (c *Catalog) divide(args mcp.M) (*mcp.ToolsCallResponse, error) {
	a, b, err := operands(args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		// Reported in the result text, not as a protocol error.
		return mcp.NewTextResult(divideByZeroText), nil
	}
	return mcp.NewTextResult(util.FormatFloat(a / b)), nil
}

func (c *Catalog) calculate(args mcp.M) (*mcp.ToolsCallResponse, error) {
	op, _ := args["operation"].(string)
	switch op {
	case OpAdd:
		return c.add(args)
	case OpSubtract:
		return c.subtract(args)
	case OpMultiply:
		return c.multiply(args)
	case OpDivide:
		return c.divide(args)
	default:
		return nil, mcp.NewError(mcp.CodeInvalidParams, "unknown operation: %s", op)
	}
}

func operands(args mcp.M) (a float64, b float64, err error) {
	var ok bool
	if a, ok = util.AnyToFloat(args["a"]); !ok {
		return 0, 0, mcp.NewError(mcp.CodeInvalidParams, "argument \"a\" must be a number")
	}
	if b, ok = util.AnyToFloat(args["b"]); !ok {
		return 0, 0, mcp.NewError(mcp.CodeInvalidParams, "argument \"b\" must be a number")
	}
	return a, b, nil
}

func operandSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"a": {Type: "number", Description: "First operand"},
			"b": {Type: "number", Description: "Second operand"},
		},
		Required: []string{"a", "b"},
	}
}

func calculateSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"operation": {
				Type:        "string",
				Description: "Operation to perform",
				Enum:        []any{OpAdd, OpSubtract, OpMultiply, OpDivide},
			},
			"a": {Type: "number", Description: "First operand"},
			"b": {Type: "number", Description: "Second operand"},
		},
		Required: []string{"operation", "a", "b"},
	}
}
