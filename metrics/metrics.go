package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Tool metrics
	ToolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_invocations_total",
			Help: "Total number of tool calls",
		},
		[]string{"tool"},
	)

	ToolErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_errors_total",
			Help: "Total number of failed tool calls",
		},
		[]string{"tool", "reason"},
	)

	// Rendering metrics
	DocumentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adf_documents_rendered_total",
			Help: "Number of ADF documents rendered to text",
		},
		[]string{"source"},
	)

	RenderFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adf_render_failures_total",
			Help: "Number of ADF payloads that could not be parsed",
		},
	)
)
