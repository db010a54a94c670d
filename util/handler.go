package util

import (
	"fmt"

	"github.com/adfkit/atlassian-text-mcp/metrics"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// ToolHandler is the argument-map handler shape used by the tool packages.
type ToolHandler = func(arguments map[string]interface{}) (*mcp.CallToolResult, error)

// ErrorGuard wraps a tool handler with panic recovery, logging and
// invocation metrics. A panic becomes an error result instead of killing
// the server.
func ErrorGuard(name string, handler ToolHandler) server.ToolHandlerFunc {
	return func(arguments map[string]interface{}) (result *mcp.CallToolResult, err error) {
		metrics.ToolInvocations.WithLabelValues(name).Inc()

		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("tool", name).Errorf("recovered from panic: %v", r)
				metrics.ToolErrors.WithLabelValues(name, "panic").Inc()
				result = mcp.NewToolResultError(fmt.Sprintf("%v", r))
				err = nil
			}
		}()

		result, err = handler(arguments)
		if err != nil {
			metrics.ToolErrors.WithLabelValues(name, "error").Inc()
			logrus.WithField("tool", name).WithError(err).Error("tool call failed")
		}
		return result, err
	}
}
