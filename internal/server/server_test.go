package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kavirubc/shopcopy/internal/catalog"
	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/Kavirubc/shopcopy/internal/pipeline"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

type failingSource struct{}

func (failingSource) Products(ctx context.Context) ([]models.Product, error) {
	return nil, errors.New("catalog unavailable")
}

func newTestServer(t *testing.T, source catalog.Source) *httptest.Server {
	t.Helper()
	coord, err := pipeline.New(config.Default(), false)
	if err != nil {
		t.Fatalf("pipeline.New() error = %v", err)
	}
	t.Cleanup(func() { coord.Close() })

	ts := httptest.NewServer(New(coord, source, "test").Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, catalog.MockSource{})

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body healthResponse
	decode(t, resp, &body)
	if body.Status != "healthy" || body.Service != "shopcopy" || body.Version != "test" {
		t.Errorf("body = %+v", body)
	}
	if body.Writer.Enabled {
		t.Errorf("writer = %+v, want disabled", body.Writer)
	}
}

func TestProcess(t *testing.T) {
	ts := newTestServer(t, catalog.MockSource{})

	resp, err := http.Get(ts.URL + "/api/process")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}

	var body processResponse
	decode(t, resp, &body)
	if body.Status != "success" || len(body.Results) != 2 {
		t.Fatalf("body = %+v", body)
	}
	if body.Results[0].ProductID != "prod_001" || body.Results[1].ProductID != "prod_002" {
		t.Errorf("result order = %s, %s", body.Results[0].ProductID, body.Results[1].ProductID)
	}
	if body.Statistics.TotalProductsProcessed != 2 || body.Statistics.CompletionRate != "100.0%" {
		t.Errorf("statistics = %+v", body.Statistics)
	}
	if len(body.Statistics.PriorityBreakdown) != 5 {
		t.Errorf("priority breakdown = %v", body.Statistics.PriorityBreakdown)
	}
}

func TestProcess_MinPriority(t *testing.T) {
	ts := newTestServer(t, catalog.MockSource{})

	resp, err := http.Get(ts.URL + "/api/process?min_priority=critical")
	if err != nil {
		t.Fatal(err)
	}
	var body processResponse
	decode(t, resp, &body)
	for _, r := range body.Results {
		if r.Priority != models.PriorityCritical {
			t.Errorf("result %s has priority %s", r.ProductID, r.Priority)
		}
	}

	resp, err = http.Get(ts.URL + "/api/process?min_priority=urgent")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	var errBody errorResponse
	decode(t, resp, &errBody)
	if errBody.Status != "error" || !strings.Contains(errBody.Error, "urgent") {
		t.Errorf("error body = %+v", errBody)
	}
}

func TestProcess_PostedProducts(t *testing.T) {
	ts := newTestServer(t, catalog.MockSource{})

	payload := `[{"id": "p1", "title": "Organic Face Cream", "description": "Good cream for your face. Made with natural stuff.",
		"vendor": "LuxeBeauty", "product_type": "Skincare"}]`
	resp, err := http.Post(ts.URL+"/api/process", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	var body processResponse
	decode(t, resp, &body)
	if len(body.Results) != 1 || body.Results[0].Priority != models.PriorityHigh {
		t.Errorf("results = %+v", body.Results)
	}
}

func TestProcess_BadInput(t *testing.T) {
	ts := newTestServer(t, catalog.MockSource{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "{nope"},
		{"product without title", `[{"id": "p1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/process", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestProcess_SourceFailure(t *testing.T) {
	ts := newTestServer(t, failingSource{})

	resp, err := http.Get(ts.URL + "/api/process")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestPreflight(t *testing.T) {
	ts := newTestServer(t, catalog.MockSource{})

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/process", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent || resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("preflight status = %d, headers = %v", resp.StatusCode, resp.Header)
	}
}

func TestExport(t *testing.T) {
	ts := newTestServer(t, catalog.MockSource{})

	resp, err := http.Get(ts.URL + "/api/export")
	if err != nil {
		t.Fatal(err)
	}
	var body exportResponse
	decode(t, resp, &body)
	if body.Status != "success" || len(body.Payloads) == 0 {
		t.Fatalf("body = %+v", body)
	}
	for _, p := range body.Payloads {
		if len(p.Updates) == 0 {
			t.Errorf("payload %s has no updates", p.ProductID)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, catalog.MockSource{})

	resp, err := http.Get(ts.URL + "/api/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestListenAndServe_Shutdown(t *testing.T) {
	coord, err := pipeline.New(config.Default(), false)
	if err != nil {
		t.Fatal(err)
	}
	defer coord.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(coord, catalog.MockSource{}, "test").ListenAndServe(ctx, "127.0.0.1:0")
	}()
	cancel()

	if err := <-done; err != nil {
		t.Errorf("ListenAndServe() error = %v", err)
	}
}
