// internal/service/ingestion_service.go
package service

import (
	"log"

	"github.com/unclebandit/customer-pipeline/internal/model"
	"github.com/unclebandit/customer-pipeline/internal/repository"
	"github.com/unclebandit/customer-pipeline/internal/source"
)

// DefaultPageSize is the per-fetch record count used when none is configured
const DefaultPageSize = 10

// IngestionService drives the page-by-page full sync from the source
// API into the store.
type IngestionService struct {
	Source       source.ClientInterface
	CustomerRepo repository.CustomerRepositoryInterface
	PageSize     int
}

// Run fetches every page from the source, normalizes it and upserts it
// as one transaction per page. The loop stops on the first empty page
// or the first short page. On any fetch or write failure the run aborts
// immediately; pages committed before the failure stay committed. The
// returned count covers committed pages only.
func (s *IngestionService) Run() (int, error) {
	limit := s.PageSize
	if limit < 1 {
		limit = DefaultPageSize
	}

	total := 0
	for page := 1; ; page++ {
		raws, err := s.Source.FetchPage(page, limit)
		if err != nil {
			return total, err
		}
		if len(raws) == 0 {
			break
		}

		batch := make([]model.Customer, len(raws))
		for i, raw := range raws {
			batch[i] = NormalizeCustomer(raw)
		}

		written, err := s.CustomerRepo.UpsertBatch(batch)
		if err != nil {
			return total, err
		}
		total += written
		log.Printf("page %d committed: %d records", page, written)

		if len(raws) < limit {
			break
		}
	}

	return total, nil
}
