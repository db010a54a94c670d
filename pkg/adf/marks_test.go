package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMarks(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		marks []*Mark
		want  string
	}{
		{"no marks", "plain text", nil, "plain text"},
		{"strong", "bold text", []*Mark{mark("strong")}, "**bold text**"},
		{"em", "italic text", []*Mark{mark("em")}, "*italic text*"},
		{"strike", "strikethrough", []*Mark{mark("strike")}, "~~strikethrough~~"},
		{"underline", "underlined", []*Mark{mark("underline")}, "<u>underlined</u>"},
		{
			"link",
			"click here",
			[]*Mark{{Type: "link", Attrs: map[string]interface{}{"href": "https://example.com"}}},
			"[click here](https://example.com)",
		},
		{
			"link without href keeps text",
			"orphan link",
			[]*Mark{{Type: "link", Attrs: map[string]interface{}{}}},
			"orphan link",
		},
		{
			"subscript",
			"2",
			[]*Mark{{Type: "subsup", Attrs: map[string]interface{}{"type": "sub"}}},
			"<sub>2</sub>",
		},
		{
			"superscript",
			"2",
			[]*Mark{{Type: "subsup", Attrs: map[string]interface{}{"type": "sup"}}},
			"<sup>2</sup>",
		},
		{
			"subsup with unexpected type keeps text",
			"2",
			[]*Mark{{Type: "subsup", Attrs: map[string]interface{}{"type": "mid"}}},
			"2",
		},
		{"unknown mark ignored", "text", []*Mark{mark("unknownMark")}, "text"},
		{"text color ignored", "text", []*Mark{mark("textColor")}, "text"},
		{
			"marks compose in order, first innermost",
			"important",
			[]*Mark{mark("strong"), mark("em")},
			"***important***",
		},
		{
			"strong link wraps the strong result",
			"docs",
			[]*Mark{mark("strong"), {Type: "link", Attrs: map[string]interface{}{"href": "https://d"}}},
			"[**docs**](https://d)",
		},
		{"code mark never applied here", "x", []*Mark{mark("code")}, "x"},
		{"nil mark entry skipped", "x", []*Mark{nil, mark("em")}, "*x*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyMarks(tt.text, tt.marks))
		})
	}
}

func TestTextNodeMarks(t *testing.T) {
	t.Run("strong through the dispatcher", func(t *testing.T) {
		got, ok := Text(textNode("bold text", mark("strong")))
		assert.True(t, ok)
		assert.Equal(t, "**bold text**", got)
	})

	t.Run("multiple marks through the dispatcher", func(t *testing.T) {
		got, ok := Text(textNode("important", mark("strong"), mark("em")))
		assert.True(t, ok)
		assert.Equal(t, "***important***", got)
	})
}
