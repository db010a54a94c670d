package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/adfkit/atlassian-text-mcp/services"
	"github.com/adfkit/atlassian-text-mcp/util"
	"github.com/ctreminiom/go-atlassian/pkg/infra/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// RegisterConfluenceTool registers the confluence tools to the server
func RegisterConfluenceTool(s *server.MCPServer) {
	tool := mcp.NewTool("confluence_search",
		mcp.WithDescription("Search Confluence pages by title"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Title text to search for")),
	)
	s.AddTool(tool, util.ErrorGuard("confluence_search", confluenceSearchHandler))

	pageTool := mcp.NewTool("confluence_get_page",
		mcp.WithDescription("Get Confluence page content rendered as markdown text"),
		mcp.WithString("page_id", mcp.Required(), mcp.Description("Confluence page ID")),
	)
	s.AddTool(pageTool, util.ErrorGuard("confluence_get_page", confluencePageHandler))

	compareTool := mcp.NewTool("confluence_compare_versions",
		mcp.WithDescription("Compare the rendered text of two versions of a Confluence page"),
		mcp.WithString("page_id", mcp.Required(), mcp.Description("Confluence page ID")),
		mcp.WithString("source_version", mcp.Description("Source version number (defaults to the version before the target)")),
		mcp.WithString("target_version", mcp.Description("Target version number (defaults to the latest version)")),
	)
	s.AddTool(compareTool, util.ErrorGuard("confluence_compare_versions", confluenceCompareHandler))
}

func confluenceSearchHandler(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	client := services.ConfluenceClient()

	query, ok := arguments["query"].(string)
	if !ok {
		return nil, fmt.Errorf("query argument is required")
	}

	ctx := context.Background()

	options := &models.PageOptionsScheme{
		Sort:       "created-date",
		Status:     []string{"current"},
		Title:      query,
		BodyFormat: "atlas_doc_format",
	}

	var results strings.Builder
	var cursor string

	for {
		chunk, response, err := client.Page.Gets(ctx, options, cursor, 20)
		if err != nil {
			if response != nil {
				return nil, fmt.Errorf("search failed with status %d: %v", response.Code, err)
			}
			return nil, fmt.Errorf("search failed: %v", err)
		}

		for _, page := range chunk.Results {
			results.WriteString(fmt.Sprintf(`
Title: %s
ID: %s
Status: %s
SpaceId: %s
----------------------------------------
`,
				page.Title,
				page.ID,
				page.Status,
				page.SpaceID,
			))
		}

		if chunk.Links == nil || chunk.Links.Next == "" {
			break
		}

		values, err := url.ParseQuery(chunk.Links.Next)
		if err != nil {
			return nil, fmt.Errorf("failed to parse next page URL: %v", err)
		}

		if _, hasCursor := values["cursor"]; hasCursor {
			cursor = values["cursor"][0]
		} else {
			break
		}
	}

	if results.Len() == 0 {
		results.WriteString("No results found")
	}

	return mcp.NewToolResultText(results.String()), nil
}

func confluencePageHandler(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	client := services.ConfluenceClient()

	pageID, ok := arguments["page_id"].(string)
	if !ok {
		return nil, fmt.Errorf("page_id argument is required")
	}

	pageIDInt, err := strconv.Atoi(pageID)
	if err != nil {
		return nil, fmt.Errorf("invalid page ID: %v", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 4*time.Second)
	defer cancel()

	// version -1 returns the latest published version
	page, response, err := client.Page.Get(ctxWithTimeout, pageIDInt, "atlas_doc_format", false, -1)
	if err != nil {
		if response != nil {
			return nil, fmt.Errorf("failed to get page: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
		}
		return nil, fmt.Errorf("failed to get page: %v", err)
	}

	if page == nil {
		return nil, fmt.Errorf("no content returned for page ID: %s", pageID)
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Title: %s\n", page.Title))
	result.WriteString(fmt.Sprintf("ID: %s\n", page.ID))
	result.WriteString(fmt.Sprintf("Space ID: %s\n", page.SpaceID))
	result.WriteString(fmt.Sprintf("Status: %s\n", page.Status))

	if page.Version != nil {
		result.WriteString(fmt.Sprintf("Version: %d (Created: %s)\n",
			page.Version.Number,
			page.Version.CreatedAt,
		))
	}

	result.WriteString("\nContent:\n")
	result.WriteString("----------------------------------------\n")
	result.WriteString(pageText(page))
	result.WriteString("\n----------------------------------------\n")

	return mcp.NewToolResultText(result.String()), nil
}

// pageText renders a page's atlas_doc_format body as text.
func pageText(page *models.PageScheme) string {
	if page == nil || page.Body == nil || page.Body.AtlasDocFormat == nil {
		return ""
	}
	return renderRawADF(page.Body.AtlasDocFormat.Value, "confluence_page")
}

func confluenceCompareHandler(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	client := services.ConfluenceClient()

	pageID, ok := arguments["page_id"].(string)
	if !ok || pageID == "" {
		return nil, fmt.Errorf("valid page_id argument is required")
	}

	pageIDInt, err := strconv.Atoi(pageID)
	if err != nil {
		return nil, fmt.Errorf("invalid page ID: %v", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	latestPage, response, err := client.Page.Get(ctxWithTimeout, pageIDInt, "atlas_doc_format", false, -1)
	if err != nil {
		if response != nil {
			return nil, fmt.Errorf("failed to get latest version: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
		}
		return nil, fmt.Errorf("failed to get latest version: %v", err)
	}

	if latestPage == nil || latestPage.Version == nil {
		return nil, fmt.Errorf("failed to get page version information")
	}

	targetNum := latestPage.Version.Number
	sourceNum := targetNum - 1

	if sourceVersion, ok := arguments["source_version"].(string); ok && sourceVersion != "" {
		if num, err := strconv.Atoi(sourceVersion); err == nil && num > 0 {
			sourceNum = num
		}
	}
	if targetVersion, ok := arguments["target_version"].(string); ok && targetVersion != "" {
		if num, err := strconv.Atoi(targetVersion); err == nil && num > 0 {
			targetNum = num
		}
	}

	if sourceNum <= 0 || targetNum <= 0 || sourceNum >= targetNum {
		return nil, fmt.Errorf("invalid version numbers: source=%d, target=%d", sourceNum, targetNum)
	}

	sourcePage, sourceResp, err := client.Page.Get(ctxWithTimeout, pageIDInt, "atlas_doc_format", false, sourceNum)
	if err != nil {
		if sourceResp != nil {
			return nil, fmt.Errorf("failed to get source version: %s (endpoint: %s)", sourceResp.Bytes.String(), sourceResp.Endpoint)
		}
		return nil, fmt.Errorf("failed to get source version: %v", err)
	}

	var targetPage *models.PageScheme
	if targetNum == latestPage.Version.Number {
		targetPage = latestPage
	} else {
		var targetResp *models.ResponseScheme
		targetPage, targetResp, err = client.Page.Get(ctxWithTimeout, pageIDInt, "atlas_doc_format", false, targetNum)
		if err != nil {
			if targetResp != nil {
				return nil, fmt.Errorf("failed to get target version: %s (endpoint: %s)", targetResp.Bytes.String(), targetResp.Endpoint)
			}
			return nil, fmt.Errorf("failed to get target version: %v", err)
		}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(pageText(sourcePage), pageText(targetPage), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Comparing version %d to version %d of page %s\n\n", sourceNum, targetNum, latestPage.Title))

	changes := 0
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			result.WriteString(fmt.Sprintf("+ %s\n", strings.TrimRight(diff.Text, "\n")))
			changes++
		case diffmatchpatch.DiffDelete:
			result.WriteString(fmt.Sprintf("- %s\n", strings.TrimRight(diff.Text, "\n")))
			changes++
		}
	}

	if changes == 0 {
		result.WriteString("No differences in rendered content.\n")
	}

	return mcp.NewToolResultText(result.String()), nil
}
