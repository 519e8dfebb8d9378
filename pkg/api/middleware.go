package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/hazyhaar/lexnorm/pkg/kit"
)

// logging records each endpoint invocation with its transport, request
// id and duration. Errors are logged at warn; successes at debug so a
// default-level logger stays quiet under normal traffic.
func logging(name string) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)

			attrs := []any{
				"endpoint", name,
				"transport", kit.GetTransport(ctx),
				"duration", time.Since(start),
			}
			if id := kit.GetRequestID(ctx); id != "" {
				attrs = append(attrs, "request_id", id)
			}
			if err != nil {
				slog.Warn("endpoint failed", append(attrs, "error", err)...)
			} else {
				slog.Debug("endpoint ok", attrs...)
			}
			return resp, err
		}
	}
}

func instrument(name string, e kit.Endpoint) kit.Endpoint {
	return kit.Chain(logging(name))(e)
}
