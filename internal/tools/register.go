// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const searchDescription = `Search for papers on arXiv by title and abstract content.

You can use advanced search syntax:
- Search in title: ti:"search terms"
- Search in abstract: abs:"search terms"
- Search by author: au:"author name"
- Combine terms with: AND, OR, ANDNOT
- Filter by category: cat:cs.AI (use list_categories tool to see available categories)

Examples:
- "machine learning"  (searches all fields)
- ti:"neural networks" AND cat:cs.AI  (title with category)
- au:bengio AND ti:"deep learning"  (author and title)

Use date_from and date_to (YYYY-MM-DD) to restrict the submission date.`

const fullTextDescription = `Get the full paper text as Markdown.

Downloads the paper PDF and converts it to Markdown. This can take up to a few
minutes depending on paper length.

Important considerations:
- Papers can be very large (10k-50k+ tokens) and may overwhelm your context window
- Equations and figures will most likely not convert correctly
- Use get_paper_data first to review the abstract before fetching full text`

// NewServer returns an MCP server named name with every tool registered.
func NewServer(name, version string, h *Handler) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)
	Register(server, h)
	return server
}

// Register adds the five arXiv tools to server.
func Register(server *mcp.Server, h *Handler) {
	addTool(server, h, &mcp.Tool{
		Name:        ToolSearchPapers,
		Description: searchDescription,
		Annotations: readOnly("Search arXiv Papers", true),
	}, h.SearchPapers)

	addTool(server, h, &mcp.Tool{
		Name:        ToolGetPaperData,
		Description: "Get detailed information about a specific paper including abstract and available formats.",
		Annotations: readOnly("Get arXiv Paper Data", true),
	}, h.GetPaperData)

	addTool(server, h, &mcp.Tool{
		Name:        ToolGetFullPaperText,
		Description: fullTextDescription,
		Annotations: readOnly("Get full paper text as Markdown", true),
	}, h.GetFullPaperText)

	addTool(server, h, &mcp.Tool{
		Name:        ToolListCategories,
		Description: "List all available arXiv categories and how to use them in search.",
		Annotations: readOnly("List arXiv Categories", false),
	}, h.ListCategories)

	addTool(server, h, &mcp.Tool{
		Name:        ToolUpdateCategories,
		Description: "Update the stored category taxonomy by fetching the latest version from arxiv.org.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Update arXiv Categories",
			OpenWorldHint: boolPtr(true),
		},
	}, h.UpdateCategories)
}

func addTool[In any](server *mcp.Server, h *Handler, tool *mcp.Tool, fn func(context.Context, In) (string, error)) {
	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		text, err := h.Invoke(ctx, tool.Name, func(ctx context.Context) (string, error) {
			return fn(ctx, in)
		})
		if err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	})
}

func readOnly(title string, openWorld bool) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:         title,
		ReadOnlyHint:  true,
		OpenWorldHint: boolPtr(openWorld),
	}
}

func boolPtr(b bool) *bool { return &b }
