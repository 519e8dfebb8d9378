package api

import (
	"context"
	"sync/atomic"

	"github.com/hazyhaar/lexnorm/pkg/batch"
	"github.com/hazyhaar/lexnorm/pkg/pipeline"
	"github.com/hazyhaar/lexnorm/pkg/translit"
)

// Service bundles the pipeline and transliteration engine behind the
// HTTP and MCP transports. Swap replaces both atomically so a SIGHUP
// reload never exposes a half-updated pair to in-flight requests.
type Service struct {
	workers int
	state   atomic.Pointer[serviceState]
}

type serviceState struct {
	pipe *pipeline.Pipeline
	eng  *translit.Engine
}

// NewService builds a service over pipe and eng. eng may be nil when
// the pipeline carries no transliteration stage. workers bounds batch
// fan-out; <= 0 uses GOMAXPROCS.
func NewService(pipe *pipeline.Pipeline, eng *translit.Engine, workers int) *Service {
	s := &Service{workers: workers}
	s.state.Store(&serviceState{pipe: pipe, eng: eng})
	return s
}

// Swap installs a freshly built pipeline and engine (hot reload).
func (s *Service) Swap(pipe *pipeline.Pipeline, eng *translit.Engine) {
	s.state.Store(&serviceState{pipe: pipe, eng: eng})
}

// Normalize runs one document through the pipeline.
func (s *Service) Normalize(doc string) string {
	return s.state.Load().pipe.Normalize(doc)
}

// NormalizeBatch maps the pipeline over docs, preserving order.
func (s *Service) NormalizeBatch(ctx context.Context, docs []string) ([]string, error) {
	pipe := s.state.Load().pipe
	return batch.Map(ctx, docs, s.workers, pipe.Normalize)
}

// Stages returns the active pipeline's stage names in order.
func (s *Service) Stages() []string {
	return s.state.Load().pipe.Stages()
}

// CacheStats reports the engine's block-cache population. Zero when
// no engine is configured.
func (s *Service) CacheStats() translit.Stats {
	if eng := s.state.Load().eng; eng != nil {
		return eng.CacheStats()
	}
	return translit.Stats{}
}
