package adf

import "strconv"

// Node represents an ADF node
type Node struct {
	Type    string                 `json:"type"`
	Text    string                 `json:"text,omitempty"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Marks   []*Mark                `json:"marks,omitempty"`
	Content []*Node                `json:"content,omitempty"`
}

// Mark represents formatting marks in ADF
type Mark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// attrString returns the named attribute as a string, or "" when it is
// missing or not a string.
func (n *Node) attrString(key string) string {
	if n.Attrs == nil {
		return ""
	}
	s, _ := n.Attrs[key].(string)
	return s
}

// attrValue returns the named attribute and whether it is present.
func (n *Node) attrValue(key string) (interface{}, bool) {
	if n.Attrs == nil {
		return nil, false
	}
	v, ok := n.Attrs[key]
	return v, ok
}

func (m *Mark) attrString(key string) string {
	if m.Attrs == nil {
		return ""
	}
	s, _ := m.Attrs[key].(string)
	return s
}

// hasCodeMark reports whether the node is a text node carrying a code mark.
func hasCodeMark(n *Node) bool {
	if n == nil || n.Type != "text" {
		return false
	}
	for _, m := range n.Marks {
		if m != nil && m.Type == "code" {
			return true
		}
	}
	return false
}

// valueString renders a scalar attribute value the way it appeared in the
// source document. JSON numbers decode as float64, so integral values must
// not pick up an exponent or a trailing fraction.
func valueString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}
