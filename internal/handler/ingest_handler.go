// internal/handler/ingest_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/unclebandit/customer-pipeline/internal/queue"
	"github.com/unclebandit/customer-pipeline/internal/service"
)

// IngestHandler holds the dependencies for ingestion HTTP handlers
type IngestHandler struct {
	Service *service.IngestionService
	Queue   queue.Queue
}

// Ingest runs a full synchronous sync against the source and reports
// the processed record count. Any failure during the run surfaces as a
// 500 with the underlying error text embedded.
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	processed, err := h.Service.Run()
	if err != nil {
		log.Println("⚠️ ingestion failed:", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "error",
			"detail": "Ingestion failed: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":            "success",
		"records_processed": processed,
	})
}

// IngestAsync queues an ingestion run instead of blocking the caller
func (h *IngestHandler) IngestAsync(w http.ResponseWriter, r *http.Request) {
	job := queue.IngestJob{PageSize: h.Service.PageSize}

	if err := h.Queue.Publish(queue.IngestJobsTopic, job); err != nil {
		log.Println("⚠️ failed to queue ingestion run:", err)
		http.Error(w, "failed to queue ingestion run: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{"status": "queued"})
}
