package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/inquiry"
	"github.com/jayshree-infra/website/internal/route"
)

// handleListCategories lists every category in display order.
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, c := range s.dir.Categories() {
		fmt.Fprintf(&b, "- %s (%s): %s [%d topics]\n",
			c.Name, route.CategoryPath(c.Name), c.Tagline, len(s.dir.Links(c.Name)))
	}
	if b.Len() == 0 {
		return mcp.NewToolResultText("No categories are configured."), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetCategoryLinks returns the flattened topic links of one category.
// An unknown category is reported as an empty result, not an error.
func (s *Server) handleGetCategoryLinks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: category"), nil
	}
	if resolved, ok := route.Resolve(s.dir.Names(), category); ok {
		category = resolved
	}

	links := s.dir.Links(category)
	if len(links) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No topics found for category %q.", category)), nil
	}
	return mcp.NewToolResultText(formatLinks(category, links)), nil
}

func formatLinks(category string, links []content.Link) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", category)
	for i, l := range links {
		fmt.Fprintf(&b, "%d. %s\n   slug: %s\n   path: %s\n   icon: %s\n",
			i+1, l.CleanLabel, l.Slug, route.TopicPath(category, l.Slug), l.Icon)
		if l.Summary != "" {
			fmt.Fprintf(&b, "   summary: %s\n", l.Summary)
		}
	}
	return b.String()
}

func (s *Server) handleSlugify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label, err := request.RequireString("label")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: label"), nil
	}
	slug := content.Slugify(label)
	if slug == "" {
		return mcp.NewToolResultError(fmt.Sprintf("label %q produces an empty slug", label)), nil
	}
	return mcp.NewToolResultText(slug), nil
}

// handleComposeInquiryLink validates the inquiry and returns the chat link
// followed by the prefilled message.
func (s *Server) handleComposeInquiryLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	form := inquiry.Form{
		FullName:    request.GetString("full_name", ""),
		UserType:    inquiry.UserType(request.GetString("user_type", "")),
		Company:     request.GetString("company", ""),
		Phone:       request.GetString("phone", ""),
		Email:       request.GetString("email", ""),
		ProjectType: request.GetString("project_type", ""),
		BudgetRange: request.GetString("budget_range", ""),
		Description: request.GetString("project_description", ""),
	}

	res, err := s.composer.Compose(form)
	var fieldErrs inquiry.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return mcp.NewToolResultError(fieldErrs.Error()), nil
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("could not build chat link: %v", err)), nil
	}

	text := fmt.Sprintf("Reference: %s\nLink: %s\n\nMessage:\n%s", res.Reference, res.Link, res.Message)
	return mcp.NewToolResultText(text), nil
}
