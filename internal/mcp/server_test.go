package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/inquiry"
)

func newTestServer() *Server {
	return NewServer(content.Default(), &inquiry.Composer{
		Number: "917047777734",
		Brand:  "JAYSHREE",
		NewRef: func() string { return "ref-42" },
	})
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var b strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_categories", listCategoriesTool, "list_categories"},
		{"get_category_links", getCategoryLinksTool, "get_category_links"},
		{"slugify", slugifyTool, "slugify"},
		{"compose_inquiry_link", composeInquiryLinkTool, "compose_inquiry_link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer()
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.dir == nil || srv.composer == nil {
		t.Error("dependencies not set")
	}
}

func TestHandleListCategories(t *testing.T) {
	srv := newTestServer()
	text := resultText(t, call(t, srv.handleListCategories, nil))
	for _, want := range []string{
		"- Company (/company): The JAYSHREE Story. [6 topics]",
		"- Projects (/projects): Portfolio of Progress. [2 topics]",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
}

func TestHandleGetCategoryLinks(t *testing.T) {
	srv := newTestServer()

	t.Run("by name", func(t *testing.T) {
		result := call(t, srv.handleGetCategoryLinks, map[string]any{"category": "Company"})
		text := resultText(t, result)
		if result.IsError {
			t.Fatalf("unexpected tool error: %s", text)
		}
		if !strings.Contains(text, "3. Awards & Recognitions\n   slug: awards-recognitions\n   path: /company/awards-recognitions") {
			t.Errorf("unexpected links:\n%s", text)
		}
	})

	t.Run("by path segment", func(t *testing.T) {
		text := resultText(t, call(t, srv.handleGetCategoryLinks, map[string]any{"category": "projects"}))
		if !strings.Contains(text, "## Projects") || !strings.Contains(text, "path: /projects/completed-projects") {
			t.Errorf("unexpected links:\n%s", text)
		}
	})

	t.Run("unknown category is empty", func(t *testing.T) {
		result := call(t, srv.handleGetCategoryLinks, map[string]any{"category": "Careers"})
		if result.IsError {
			t.Error("unknown category should not be a tool error")
		}
		if !strings.Contains(resultText(t, result), "No topics found") {
			t.Error("expected an empty-result message")
		}
	})

	t.Run("missing category", func(t *testing.T) {
		if result := call(t, srv.handleGetCategoryLinks, map[string]any{}); !result.IsError {
			t.Error("expected error for missing category")
		}
	})
}

func TestHandleSlugify(t *testing.T) {
	srv := newTestServer()

	text := resultText(t, call(t, srv.handleSlugify, map[string]any{"label": "Environment, Health & Safety"}))
	if text != "environment-health-safety" {
		t.Errorf("slug = %q", text)
	}
	if result := call(t, srv.handleSlugify, map[string]any{"label": "&&&"}); !result.IsError {
		t.Error("expected error for a label without slug characters")
	}
}

func TestHandleComposeInquiryLink(t *testing.T) {
	srv := newTestServer()
	args := map[string]any{
		"full_name":           "Asha Verma",
		"phone":               "9876543210",
		"email":               "asha@example.com",
		"project_type":        "roads_highways",
		"budget_range":        "5L-50L",
		"project_description": "Village road",
	}

	result := call(t, srv.handleComposeInquiryLink, args)
	text := resultText(t, result)
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	for _, want := range []string{"Reference: ref-42", "Link: https://wa.me/917047777734?text=", "*NEW JAYSHREE PROJECT INQUIRY*"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}

	args["user_type"] = "company"
	result = call(t, srv.handleComposeInquiryLink, args)
	if !result.IsError || !strings.Contains(resultText(t, result), "company") {
		t.Error("company inquiry without a company name should fail")
	}
}
