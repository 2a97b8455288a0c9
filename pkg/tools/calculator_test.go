package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calcCall(t *testing.T, expression string) Call {
	t.Helper()
	raw, err := json.Marshal(CalculatorArgs{Expression: expression})
	require.NoError(t, err)
	return Call{Arguments: raw}
}

func TestCalculatorTool_Arithmetic(t *testing.T) {
	tool := NewCalculatorTool()

	res, err := tool.Execute(context.Background(), calcCall(t, "(2 + 3) * 4"))
	require.NoError(t, err)
	require.Nil(t, res.Error)
	assert.Equal(t, "20", res.Content)
}

func TestCalculatorTool_FloatingPoint(t *testing.T) {
	tool := NewCalculatorTool()

	res, err := tool.Execute(context.Background(), calcCall(t, "3.2e9 * 0.04 / 12"))
	require.NoError(t, err)
	require.Nil(t, res.Error)
	assert.Contains(t, res.Content, "1.066666")
}

func TestCalculatorTool_ParseError(t *testing.T) {
	tool := NewCalculatorTool()

	res, err := tool.Execute(context.Background(), calcCall(t, "2 +* 3"))
	require.NoError(t, err)
	require.NotNil(t, res.Error)
	assert.Contains(t, res.Error.Message, "could not parse")
}

func TestCalculatorTool_EmptyExpression(t *testing.T) {
	tool := NewCalculatorTool()

	res, err := tool.Execute(context.Background(), calcCall(t, ""))
	require.NoError(t, err)
	require.NotNil(t, res.Error)
}
