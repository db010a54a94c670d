package adf

import "strings"

// mergeSiblings renders an ordered list of sibling nodes, coalescing
// adjacent code-marked text runs into a single code unit instead of
// emitting each as an isolated inline span.
//
// Code-marked siblings accumulate line by line into a pending buffer; the
// buffer flushes whenever a non-code sibling arrives and once more at the
// end. Every flushed unit and every converted sibling becomes one part,
// and parts join with newlines. Adjacent non-code inline runs are
// therefore newline-separated, not concatenated.
func mergeSiblings(items []interface{}, depth int) (string, bool) {
	var parts []string
	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		parts = append(parts, flushCode(pending))
		pending = nil
	}

	for _, item := range items {
		if n, ok := asNode(item); ok && hasCodeMark(n) {
			pending = append(pending, codeLines(n)...)
			continue
		}
		flush()
		// Empty conversions contribute no part; they must not become
		// blank lines in the join.
		if text, ok := convert(item, depth+1); ok && text != "" {
			parts = append(parts, text)
		}
	}
	flush()

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}

// flushCode renders buffered code lines as an inline span when there is a
// single line, and as a fenced block otherwise.
func flushCode(lines []string) string {
	if len(lines) == 1 && !strings.Contains(lines[0], "\n") {
		return "`" + lines[0] + "`"
	}
	return "```\n" + strings.Join(lines, "\n") + "\n```"
}

func asNode(v interface{}) (*Node, bool) {
	switch t := v.(type) {
	case *Node:
		return t, t != nil
	case map[string]interface{}:
		return fromMap(t), true
	}
	return nil, false
}
