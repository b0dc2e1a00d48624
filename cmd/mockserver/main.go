// cmd/mockserver/main.go
//
// Mock data provider: serves a JSON customer dataset over the same
// paginated API the pipeline ingests from. Records pass through
// untouched so deliberately malformed seed fields reach the consumer.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type mockAPI struct {
	dataFile string
}

func (m *mockAPI) loadCustomers() []map[string]any {
	content, err := os.ReadFile(m.dataFile)
	if err != nil {
		log.Println("⚠️ could not read data file:", err)
		return []map[string]any{}
	}

	var customers []map[string]any
	if err := json.Unmarshal(content, &customers); err != nil {
		log.Println("⚠️ could not parse data file:", err)
		return []map[string]any{}
	}
	return customers
}

// pageBounds clamps paging values and returns the slice bounds for one page
func pageBounds(total, page, limit int) (start, end int) {
	start = (page - 1) * limit
	end = start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end
}

func (m *mockAPI) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers := m.loadCustomers()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(customers)
	start, end := pageBounds(total, page, limit)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"data":  customers[start:end],
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (m *mockAPI) getCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, c := range m.loadCustomers() {
		if customerID, ok := c["customer_id"].(string); ok && customerID == id {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"data": c})
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"error": "Customer not found"})
}

func (m *mockAPI) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "mock-server",
	})
}

func main() {
	dataFile := os.Getenv("MOCK_DATA_FILE")
	if dataFile == "" {
		dataFile = "seed/customers.json"
	}

	api := &mockAPI{dataFile: dataFile}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/customers", api.listCustomers)
	r.Get("/api/customers/{id}", api.getCustomer)
	r.Get("/api/health", api.health)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("🚀 Mock server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
