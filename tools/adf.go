package tools

import (
	"github.com/adfkit/atlassian-text-mcp/metrics"
	"github.com/adfkit/atlassian-text-mcp/pkg/adf"
	"github.com/ctreminiom/go-atlassian/pkg/infra/models"
)

// toADFNode converts go-atlassian's ADF representation to the local node
// tree understood by pkg/adf.
func toADFNode(node *models.CommentNodeScheme) *adf.Node {
	if node == nil {
		return nil
	}

	adfNode := &adf.Node{
		Type: node.Type,
		Text: node.Text,
	}

	if len(node.Attrs) > 0 {
		adfNode.Attrs = make(map[string]interface{}, len(node.Attrs))
		for k, v := range node.Attrs {
			adfNode.Attrs[k] = v
		}
	}

	for _, mark := range node.Marks {
		if mark == nil {
			continue
		}
		adfMark := &adf.Mark{Type: mark.Type}
		if len(mark.Attrs) > 0 {
			adfMark.Attrs = make(map[string]interface{}, len(mark.Attrs))
			for k, v := range mark.Attrs {
				adfMark.Attrs[k] = v
			}
		}
		adfNode.Marks = append(adfNode.Marks, adfMark)
	}

	for _, child := range node.Content {
		if childNode := toADFNode(child); childNode != nil {
			adfNode.Content = append(adfNode.Content, childNode)
		}
	}

	return adfNode
}

// renderADF renders an API-supplied ADF document as text. Returns "" when
// there is nothing to render. source labels the rendering metric.
func renderADF(node *models.CommentNodeScheme, source string) string {
	adfNode := toADFNode(node)
	if adfNode == nil {
		return ""
	}

	text, ok := adf.Text(adfNode)
	if !ok {
		return ""
	}

	metrics.DocumentsRendered.WithLabelValues(source).Inc()
	return text
}

// renderRawADF renders a raw atlas_doc_format JSON payload as text.
func renderRawADF(raw string, source string) string {
	if raw == "" {
		return ""
	}

	node, err := adf.ParseJSON([]byte(raw))
	if err != nil {
		metrics.RenderFailures.Inc()
		return ""
	}

	text, ok := adf.Text(node)
	if !ok {
		return ""
	}

	metrics.DocumentsRendered.WithLabelValues(source).Inc()
	return text
}
