package adf

import (
	json "github.com/goccy/go-json"
)

// ParseJSON decodes a raw ADF document, such as the value of a Confluence
// atlas_doc_format body, into a Node tree.
func ParseJSON(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
