package adf

// markWrappers maps a mark type to the markup it wraps around a text run.
// The code mark is deliberately absent: code runs are rendered by the
// sibling merge (see merge.go) so consecutive runs can coalesce into one
// block, and must never be re-wrapped here.
var markWrappers = map[string]func(text string, m *Mark) string{
	"strong": func(text string, _ *Mark) string {
		return "**" + text + "**"
	},
	"em": func(text string, _ *Mark) string {
		return "*" + text + "*"
	},
	"strike": func(text string, _ *Mark) string {
		return "~~" + text + "~~"
	},
	"underline": func(text string, _ *Mark) string {
		return "<u>" + text + "</u>"
	},
	"link": func(text string, m *Mark) string {
		href := m.attrString("href")
		if href == "" {
			return text
		}
		return "[" + text + "](" + href + ")"
	},
	"subsup": func(text string, m *Mark) string {
		switch m.attrString("type") {
		case "sub":
			return "<sub>" + text + "</sub>"
		case "sup":
			return "<sup>" + text + "</sup>"
		}
		return text
	},
}

// applyMarks wraps text in the markup implied by its ordered mark list.
// Marks compose left to right as successive wrapping, so the first mark
// ends up innermost. Unknown mark types (textColor, backgroundColor, ...)
// are ignored.
func applyMarks(text string, marks []*Mark) string {
	for _, m := range marks {
		if m == nil {
			continue
		}
		if wrap, ok := markWrappers[m.Type]; ok {
			text = wrap(text, m)
		}
	}
	return text
}
