package adf

import (
	"strconv"
	"strings"
	"time"
)

// maxDepth caps recursion so an adversarially nested document cannot
// overflow the stack. Real documents are a handful of levels deep.
const maxDepth = 512

// Text converts ADF content to plain/markdown text.
//
// ADF is the rich text format Jira Cloud and Confluence return for fields
// like descriptions, comments and page bodies. The input may be nil, an
// already-plain string, a *Node, a generically decoded node
// (map[string]interface{}), or an ordered list of siblings ([]*Node or
// []interface{}). The second return value is false when the input holds no
// renderable content; malformed input degrades to defaults and never
// produces an error.
func Text(v interface{}) (string, bool) {
	return convert(v, 0)
}

func convert(v interface{}, depth int) (string, bool) {
	if depth > maxDepth {
		return "", false
	}

	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case *Node:
		if t == nil {
			return "", false
		}
		return convertNode(t, depth)
	case map[string]interface{}:
		return convertNode(fromMap(t), depth)
	case []*Node:
		items := make([]interface{}, len(t))
		for i, n := range t {
			items[i] = n
		}
		return mergeSiblings(items, depth)
	case []interface{}:
		return mergeSiblings(t, depth)
	}
	return "", false
}

func convertNode(n *Node, depth int) (string, bool) {
	switch n.Type {
	case "text":
		if hasCodeMark(n) {
			// Code-marked text follows the same inline-span vs fenced-block
			// rule as merged code runs, with the code mark stripped before
			// the remaining marks apply.
			return flushCode(codeLines(n)), true
		}
		return applyMarks(n.Text, n.Marks), true

	case "hardBreak":
		return "\n", true

	case "mention":
		if text := n.attrString("text"); text != "" {
			return text, true
		}
		if id, ok := n.attrValue("id"); ok {
			return "@" + valueString(id), true
		}
		return "@unknown", true

	case "emoji":
		if text := n.attrString("text"); text != "" {
			return text, true
		}
		return n.attrString("shortName"), true

	case "date":
		return formatDate(n), true

	case "status":
		return "[" + n.attrString("text") + "]", true

	case "inlineCard":
		if url := n.attrString("url"); url != "" {
			return url, true
		}
		if data, ok := n.Attrs["data"].(map[string]interface{}); ok {
			if url, _ := data["url"].(string); url != "" {
				return url, true
			}
			name, _ := data["name"].(string)
			return name, true
		}
		return "", true

	case "codeBlock":
		inner, _ := convert(n.Content, depth+1)
		return "```\n" + inner + "\n```", true
	}

	// Unrecognized type: recurse into the generic content field when there
	// is one, otherwise there is nothing to render.
	if len(n.Content) > 0 {
		return convert(n.Content, depth+1)
	}
	return "", false
}

// formatDate renders a date node's millisecond epoch timestamp as
// YYYY-MM-DD in UTC. Anything unparseable passes through as raw text.
func formatDate(n *Node) string {
	ts, ok := n.attrValue("timestamp")
	if !ok || ts == nil {
		return ""
	}
	if num, isNum := ts.(float64); isNum && num == 0 {
		return ""
	}
	raw := valueString(ts)
	if raw == "" {
		return ""
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	at := time.UnixMilli(ms).UTC()
	if at.Year() < 1 || at.Year() > 9999 {
		return raw
	}
	return at.Format("2006-01-02")
}

// codeLines extracts a code-marked text node's content as individual lines,
// with the code mark removed but every other mark still applied.
func codeLines(n *Node) []string {
	return strings.Split(applyMarks(n.Text, n.Marks), "\n")
}

// fromMap builds a Node from a generically decoded JSON object. Fields
// with unexpected shapes are dropped rather than rejected.
func fromMap(m map[string]interface{}) *Node {
	n := &Node{}
	n.Type, _ = m["type"].(string)
	n.Text, _ = m["text"].(string)
	n.Attrs, _ = m["attrs"].(map[string]interface{})

	if marks, ok := m["marks"].([]interface{}); ok {
		for _, raw := range marks {
			mm, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			mark := &Mark{}
			mark.Type, _ = mm["type"].(string)
			mark.Attrs, _ = mm["attrs"].(map[string]interface{})
			n.Marks = append(n.Marks, mark)
		}
	}

	if content, ok := m["content"].([]interface{}); ok {
		for _, raw := range content {
			cm, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			n.Content = append(n.Content, fromMap(cm))
		}
	}

	return n
}
