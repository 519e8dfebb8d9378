package api

import (
	"encoding/json"
	"net/http"

	"github.com/hazyhaar/lexnorm/pkg/kit"
)

// NewRouter returns an http.Handler with all lexnorm API routes.
func NewRouter(svc *Service) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		normalize:      instrument("normalize", normalizeEndpoint(svc)),
		normalizeBatch: instrument("normalize_batch", normalizeBatchEndpoint(svc)),
		listStages:     instrument("list_stages", listStagesEndpoint(svc)),
		svc:            svc,
	}

	mux.HandleFunc("GET /v1/normalize/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/normalize/batch", h.handleNormalizeBatch)
	mux.HandleFunc("GET /v1/normalize/{doc}", h.handleNormalize)
	mux.HandleFunc("GET /v1/stages", h.handleListStages)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(requestID(mux))
}

type handler struct {
	normalize      kit.Endpoint
	normalizeBatch kit.Endpoint
	listStages     kit.Endpoint
	svc            *Service
}

// --- normalize single document ---

func (h *handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	doc := r.PathValue("doc")
	if doc == "" {
		writeError(w, http.StatusBadRequest, "missing document")
		return
	}

	resp, err := h.normalize(r.Context(), &normalizeReq{Doc: doc})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- normalize batch ---

type httpBatchRequest struct {
	Docs []string `json:"docs"`
}

func (h *handler) handleNormalizeBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.normalizeBatch(r.Context(), &normalizeBatchReq{Docs: req.Docs})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- list stages ---

func (h *handler) handleListStages(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listStages(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status string `json:"status"`
	Stages int    `json:"stages"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Stages: len(h.svc.Stages()),
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// requestID propagates a caller-supplied X-Request-Id into the request
// context so endpoint logs can be correlated.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get("X-Request-Id"); id != "" {
			r = r.WithContext(kit.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
