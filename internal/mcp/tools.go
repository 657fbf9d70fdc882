package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jayshree-infra/website/internal/inquiry"
)

// listCategoriesTool defines the list_categories MCP tool.
var listCategoriesTool = mcp.NewTool("list_categories",
	mcp.WithDescription("List the site's top-level categories with their taglines, paths and topic counts."),
)

// getCategoryLinksTool defines the get_category_links MCP tool.
var getCategoryLinksTool = mcp.NewTool("get_category_links",
	mcp.WithDescription("Get the topics of a category in display order, with clean labels, slugs and page paths."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description("Category name (e.g. Company) or path segment (e.g. company)"),
	),
)

// slugifyTool defines the slugify MCP tool.
var slugifyTool = mcp.NewTool("slugify",
	mcp.WithDescription("Convert a topic label into the URL slug the site uses for it."),
	mcp.WithString("label",
		mcp.Required(),
		mcp.Description("Topic label, e.g. \"Awards & Recognitions\""),
	),
)

// composeInquiryLinkTool defines the compose_inquiry_link MCP tool.
var composeInquiryLinkTool = mcp.NewTool("compose_inquiry_link",
	mcp.WithDescription("Validate a project inquiry and build the WhatsApp link that opens a chat with the message prefilled."),
	mcp.WithString("full_name", mcp.Required(), mcp.Description("Client's full name")),
	mcp.WithString("user_type",
		mcp.Description("Whether the client is an individual or a company (default individual)"),
		mcp.Enum(string(inquiry.UserIndividual), string(inquiry.UserCompany)),
	),
	mcp.WithString("company", mcp.Description("Company name, required when user_type is company")),
	mcp.WithString("phone", mcp.Required(), mcp.Description("Contact phone number")),
	mcp.WithString("email", mcp.Required(), mcp.Description("Contact email address")),
	mcp.WithString("project_type",
		mcp.Required(),
		mcp.Description("Kind of project"),
		mcp.Enum(optionValues(inquiry.ProjectTypes)...),
	),
	mcp.WithString("budget_range",
		mcp.Required(),
		mcp.Description("Budget bracket in INR"),
		mcp.Enum(optionValues(inquiry.BudgetRanges)...),
	),
	mcp.WithString("project_description", mcp.Required(), mcp.Description("Short description of the project")),
)

func optionValues(opts []inquiry.Option) []string {
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}
