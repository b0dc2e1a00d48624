package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
)

func writeDataFile(t *testing.T, customers []map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.json")
	content, err := json.Marshal(customers)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testRouter(api *mockAPI) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/customers", api.listCustomers)
	r.Get("/api/customers/{id}", api.getCustomer)
	r.Get("/api/health", api.health)
	return r
}

func TestPageBounds(t *testing.T) {
	cases := []struct {
		total, page, limit int
		wantStart, wantEnd int
	}{
		{25, 1, 10, 0, 10},
		{25, 3, 10, 20, 25},
		{25, 4, 10, 25, 25},
		{0, 1, 10, 0, 0},
		{5, 2, 10, 5, 5},
	}
	for _, tc := range cases {
		start, end := pageBounds(tc.total, tc.page, tc.limit)
		if start != tc.wantStart || end != tc.wantEnd {
			t.Errorf("pageBounds(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tc.total, tc.page, tc.limit, start, end, tc.wantStart, tc.wantEnd)
		}
	}
}

func TestListCustomersClampsAndPaginates(t *testing.T) {
	customers := []map[string]any{}
	for _, id := range []string{"CUST001", "CUST002", "CUST003"} {
		customers = append(customers, map[string]any{"customer_id": id})
	}
	api := &mockAPI{dataFile: writeDataFile(t, customers)}

	req := httptest.NewRequest(http.MethodGet, "/api/customers?page=0&limit=-1", nil)
	rec := httptest.NewRecorder()
	testRouter(api).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
		Page  int              `json:"page"`
		Limit int              `json:"limit"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Page != 1 || body.Limit != 10 {
		t.Errorf("expected clamped params, got page=%d limit=%d", body.Page, body.Limit)
	}
	if body.Total != 3 || len(body.Data) != 3 {
		t.Errorf("unexpected page: total=%d len=%d", body.Total, len(body.Data))
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	api := &mockAPI{dataFile: writeDataFile(t, []map[string]any{})}

	req := httptest.NewRequest(http.MethodGet, "/api/customers/nonexistent", nil)
	rec := httptest.NewRecorder()
	testRouter(api).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["error"] != "Customer not found" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestLoadCustomersMissingFile(t *testing.T) {
	api := &mockAPI{dataFile: filepath.Join(t.TempDir(), "missing.json")}
	if got := api.loadCustomers(); len(got) != 0 {
		t.Errorf("expected empty dataset for missing file, got %d", len(got))
	}
}
