package tools

import (
	"testing"

	"github.com/ctreminiom/go-atlassian/pkg/infra/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToADFNode(t *testing.T) {
	scheme := &models.CommentNodeScheme{
		Type: "doc",
		Content: []*models.CommentNodeScheme{
			{
				Type: "paragraph",
				Content: []*models.CommentNodeScheme{
					{
						Type: "text",
						Text: "see",
						Marks: []*models.MarkScheme{
							{Type: "link", Attrs: map[string]interface{}{"href": "https://example.com"}},
						},
					},
					{
						Type:  "status",
						Attrs: map[string]interface{}{"text": "DONE"},
					},
				},
			},
		},
	}

	node := toADFNode(scheme)
	require.NotNil(t, node)
	assert.Equal(t, "doc", node.Type)
	require.Len(t, node.Content, 1)

	para := node.Content[0]
	require.Len(t, para.Content, 2)
	assert.Equal(t, "see", para.Content[0].Text)
	require.Len(t, para.Content[0].Marks, 1)
	assert.Equal(t, "link", para.Content[0].Marks[0].Type)
	assert.Equal(t, "https://example.com", para.Content[0].Marks[0].Attrs["href"])
	assert.Equal(t, "DONE", para.Content[1].Attrs["text"])
}

func TestToADFNodeNil(t *testing.T) {
	assert.Nil(t, toADFNode(nil))
}

func TestRenderADF(t *testing.T) {
	scheme := &models.CommentNodeScheme{
		Type: "doc",
		Content: []*models.CommentNodeScheme{
			{
				Type: "paragraph",
				Content: []*models.CommentNodeScheme{
					{Type: "text", Text: "First"},
				},
			},
			{
				Type: "paragraph",
				Content: []*models.CommentNodeScheme{
					{Type: "text", Text: "cmd", Marks: []*models.MarkScheme{{Type: "code"}}},
				},
			},
		},
	}

	assert.Equal(t, "First\n`cmd`", renderADF(scheme, "test"))
}

func TestRenderADFEmpty(t *testing.T) {
	assert.Equal(t, "", renderADF(nil, "test"))
	assert.Equal(t, "", renderADF(&models.CommentNodeScheme{Type: "doc"}, "test"))
}

func TestRenderRawADF(t *testing.T) {
	raw := `{"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text","text":"Page body"}]}]}`
	assert.Equal(t, "Page body", renderRawADF(raw, "test"))
}

func TestRenderRawADFInvalid(t *testing.T) {
	assert.Equal(t, "", renderRawADF(`{"type":`, "test"))
	assert.Equal(t, "", renderRawADF("", "test"))
}
