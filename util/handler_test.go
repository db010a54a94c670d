package util

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorGuardPassesThrough(t *testing.T) {
	handler := ErrorGuard("passthrough", func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("fine"), nil
	})

	result, err := handler(map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
}

func TestErrorGuardKeepsErrors(t *testing.T) {
	handler := ErrorGuard("failing", func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		return nil, errors.New("backend unavailable")
	})

	result, err := handler(nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestErrorGuardRecoversPanic(t *testing.T) {
	handler := ErrorGuard("panicky", func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		panic("boom")
	})

	result, err := handler(map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
