package api

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/lexnorm/pkg/kit"
)

// RegisterMCPTools registers the three lexnorm MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, svc *Service) {
	registerNormalize(srv, svc)
	registerNormalizeBatch(srv, svc)
	registerListStages(srv, svc)
}

func registerNormalize(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("normalize_text",
		mcp.WithDescription("Canonicalize one text document: contraction expansion, ASCII transliteration, punctuation spacing, digit masking."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to normalize")),
	)

	kit.RegisterMCPTool(srv, tool, instrument("normalize", normalizeEndpoint(svc)),
		func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
			text, _ := req.GetArguments()["text"].(string)
			return &kit.MCPDecodeResult{
				Request:   &normalizeReq{Doc: text},
				EnrichCtx: mcpTransport,
			}, nil
		})
}

func registerNormalizeBatch(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("normalize_batch",
		mcp.WithDescription("Canonicalize multiple text documents (up to 100), one per line."),
		mcp.WithString("texts", mcp.Required(), mcp.Description("Newline-separated documents to normalize")),
	)

	kit.RegisterMCPTool(srv, tool, instrument("normalize_batch", normalizeBatchEndpoint(svc)),
		func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
			raw, _ := req.GetArguments()["texts"].(string)
			docs := strings.Split(raw, "\n")
			return &kit.MCPDecodeResult{
				Request:   &normalizeBatchReq{Docs: docs},
				EnrichCtx: mcpTransport,
			}, nil
		})
}

func registerListStages(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("list_stages",
		mcp.WithDescription("List the active normalization stages in execution order, with transliteration cache stats."),
	)

	kit.RegisterMCPTool(srv, tool, instrument("list_stages", listStagesEndpoint(svc)),
		func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
			return &kit.MCPDecodeResult{Request: nil, EnrichCtx: mcpTransport}, nil
		})
}

func mcpTransport(ctx context.Context) context.Context {
	return kit.WithTransport(ctx, "mcp_stdio")
}
