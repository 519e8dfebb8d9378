package api

import (
	"context"
	"fmt"

	"github.com/hazyhaar/lexnorm/pkg/kit"
	"github.com/hazyhaar/lexnorm/pkg/translit"
)

// Shared request/response types used by both HTTP and MCP transports.

const maxBatchDocs = 100

// Result is one normalized document.
type Result struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type batchResponse struct {
	Results []Result `json:"results"`
}

type stagesResponse struct {
	Stages []string       `json:"stages"`
	Cache  translit.Stats `json:"translit_cache"`
}

type normalizeReq struct {
	Doc string
}

type normalizeBatchReq struct {
	Docs []string
}

func normalizeEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*normalizeReq)
		return Result{Input: req.Doc, Output: svc.Normalize(req.Doc)}, nil
	}
}

func normalizeBatchEndpoint(svc *Service) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*normalizeBatchReq)
		if len(req.Docs) == 0 {
			return nil, fmt.Errorf("docs array is empty")
		}
		if len(req.Docs) > maxBatchDocs {
			return nil, fmt.Errorf("too many docs (max %d, got %d)", maxBatchDocs, len(req.Docs))
		}
		outputs, err := svc.NormalizeBatch(ctx, req.Docs)
		if err != nil {
			return nil, err
		}
		results := make([]Result, len(req.Docs))
		for i, doc := range req.Docs {
			results[i] = Result{Input: doc, Output: outputs[i]}
		}
		return batchResponse{Results: results}, nil
	}
}

func listStagesEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return stagesResponse{Stages: svc.Stages(), Cache: svc.CacheStats()}, nil
	}
}
