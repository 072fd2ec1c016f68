// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the recruitment workspace to LLM tools via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/intake"
	"github.com/starford/boreacrutis/internal/service"
	"github.com/starford/boreacrutis/internal/storage"
)

const actionReferenceURI = "boreacrutis://actions"

// Server wraps the MCP server with workspace tools.
type Server struct {
	mcp     *server.MCPServer
	svc     *service.Service
	exports *storage.FS
}

// New creates a new MCP server with all tools registered. exports, when
// non-nil, is where export_entity writes files on request.
func New(svc *service.Service, exports *storage.FS) *Server {
	s := &Server{svc: svc, exports: exports}

	s.mcp = server.NewMCPServer(
		"Boreacrutis",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_tabs",
		mcp.WithDescription("List workspace tabs with their module, item count and focus."),
		mcp.WithString("module", mcp.Description("Optional module filter: profiles, jobads or casestudies")),
	), s.listTabs)

	s.mcp.AddTool(mcp.NewTool("list_content_blocks",
		mcp.WithDescription("List content library blocks, optionally filtered."),
		mcp.WithString("type", mcp.Description("Block type, e.g. skill or red_flag")),
		mcp.WithString("category", mcp.Description("Exact category")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; all must be present")),
		mcp.WithString("search", mcp.Description("Case-insensitive text searched in title, content and tags")),
	), s.listContentBlocks)

	s.mcp.AddTool(mcp.NewTool("import_markdown",
		mcp.WithDescription("Parse a Markdown document into a profile, job ad or case study and add it to a tab. "+
			"Without a tab the active tab is used when it belongs to the module, else the module's first tab."),
		mcp.WithString("module", mcp.Required(), mcp.Description("profiles, jobads or casestudies")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Markdown document")),
		mcp.WithString("tab", mcp.Description("Optional target tab id")),
	), s.importMarkdown)

	s.mcp.AddTool(mcp.NewTool("export_entity",
		mcp.WithDescription("Render a profile, job ad or case study as Markdown."),
		mcp.WithString("module", mcp.Required(), mcp.Description("profiles, jobads or casestudies")),
		mcp.WithString("tab", mcp.Required(), mcp.Description("Tab id")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Entity id")),
		mcp.WithBoolean("save", mcp.Description("Also write the file to the export directory")),
	), s.exportEntity)

	s.mcp.AddTool(mcp.NewTool("dispatch_action",
		mcp.WithDescription("Apply one workspace action. Read the action reference via get_action_reference "+
			"or the "+actionReferenceURI+" resource first."),
		mcp.WithString("action", mcp.Required(), mcp.Description(`Action JSON, e.g. {"type":"TOGGLE_DARK_MODE"}`)),
	), s.dispatchAction)

	s.mcp.AddTool(mcp.NewTool("get_action_reference",
		mcp.WithDescription("Returns the action wire format accepted by dispatch_action."),
	), s.getActionReference)

	s.mcp.AddResource(
		mcp.NewResource(actionReferenceURI, "Action Reference",
			mcp.WithResourceDescription("JSON shapes of every workspace action."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readActionReference,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// optString returns an optional string argument, or "" when absent.
func optString(req mcp.CallToolRequest, key string) string {
	if v, err := req.RequireString(key); err == nil {
		return v
	}
	return ""
}

func optBool(req mcp.CallToolRequest, key string) bool {
	v, err := req.RequireBool(key)
	return err == nil && v
}

func optionalModule(req mcp.CallToolRequest) (domain.ModuleType, error) {
	name := optString(req, "module")
	if name == "" {
		return "", nil
	}
	return service.ParseModule(name)
}

func (s *Server) listTabs(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	module, err := optionalModule(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.svc.Tabs(module))
}

func (s *Server) listContentBlocks(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var f domain.LibraryFilter
	if v := optString(req, "type"); v != "" {
		t := domain.BlockType(v)
		if !t.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown block type %q", v)), nil
		}
		f.Type = &t
	}
	if v := optString(req, "category"); v != "" {
		f.Category = &v
	}
	if v := optString(req, "tags"); v != "" {
		f.Tags = intake.ParseTags(v)
	}
	if v := optString(req, "search"); v != "" {
		f.SearchQuery = &v
	}
	return jsonResult(s.svc.ContentBlocks(f))
}

func (s *Server) importMarkdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("module")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	module, err := service.ParseModule(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	imp, err := s.svc.Import(ctx, module, optString(req, "tab"), content)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(imp)
}

func (s *Server) exportEntity(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args [3]string
	for i, key := range []string{"module", "tab", "id"} {
		v, err := req.RequireString(key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args[i] = v
	}
	module, err := service.ParseModule(args[0])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	exp, err := s.svc.Export(module, args[1], args[2])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !optBool(req, "save") {
		return mcp.NewToolResultText(exp.Markdown), nil
	}
	if s.exports == nil {
		return mcp.NewToolResultError("no export directory configured"), nil
	}
	if err := s.exports.Write(exp.Filename, []byte(exp.Markdown)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("saved: %s", exp.Filename)), nil
}

func (s *Server) dispatchAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("action")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	st, err := s.svc.DispatchJSON(ctx, []byte(strings.TrimSpace(raw)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"activeTabId":  st.ActiveTabID,
		"activeModule": st.ActiveModule,
		"tabs":         s.svc.Tabs(""),
	})
}

func (s *Server) getActionReference(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ActionReference), nil
}

func (s *Server) readActionReference(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      actionReferenceURI,
			MIMEType: "text/markdown",
			Text:     ActionReference,
		},
	}, nil
}
