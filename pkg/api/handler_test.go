package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hazyhaar/lexnorm/pkg/pipeline"
)

func testService(t *testing.T) *Service {
	t.Helper()
	pipe := pipeline.New(pipeline.NewStage("upper", strings.ToUpper))
	return NewService(pipe, nil, 2)
}

func TestHandleNormalize(t *testing.T) {
	router := NewRouter(testService(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/normalize/hello", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Input != "hello" || res.Output != "HELLO" {
		t.Errorf("result = %+v", res)
	}
}

func TestHandleNormalizeBatch(t *testing.T) {
	router := NewRouter(testService(t))

	body := `{"docs": ["one", "two", "three"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/normalize/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	want := []string{"ONE", "TWO", "THREE"}
	if len(res.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(res.Results), len(want))
	}
	for i, w := range want {
		if res.Results[i].Output != w {
			t.Errorf("results[%d].Output = %q, want %q (order must be preserved)", i, res.Results[i].Output, w)
		}
	}
}

func TestHandleNormalizeBatchErrors(t *testing.T) {
	router := NewRouter(testService(t))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty docs", `{"docs": []}`, http.StatusBadRequest},
		{"invalid json", `{docs}`, http.StatusBadRequest},
		{"too many docs", tooManyDocs(), http.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/v1/normalize/batch", strings.NewReader(tt.body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.want)
		}
	}
}

func tooManyDocs() string {
	docs := make([]string, maxBatchDocs+1)
	for i := range docs {
		docs[i] = "d"
	}
	b, _ := json.Marshal(map[string][]string{"docs": docs})
	return string(b)
}

func TestBatchRejectsGet(t *testing.T) {
	router := NewRouter(testService(t))
	req := httptest.NewRequest(http.MethodGet, "/v1/normalize/batch", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleListStages(t *testing.T) {
	router := NewRouter(testService(t))
	req := httptest.NewRequest(http.MethodGet, "/v1/stages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res struct {
		Stages []string `json:"stages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Stages) != 1 || res.Stages[0] != "upper" {
		t.Errorf("stages = %v", res.Stages)
	}
}

func TestHandleHealth(t *testing.T) {
	router := NewRouter(testService(t))
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestServiceSwap(t *testing.T) {
	svc := testService(t)
	if got := svc.Normalize("hi"); got != "HI" {
		t.Fatalf("Normalize = %q", got)
	}

	svc.Swap(pipeline.New(pipeline.NewStage("lower", strings.ToLower)), nil)
	if got := svc.Normalize("HI"); got != "hi" {
		t.Errorf("Normalize after Swap = %q, want %q", got, "hi")
	}
	if got := svc.Stages(); len(got) != 1 || got[0] != "lower" {
		t.Errorf("Stages after Swap = %v", got)
	}
}
