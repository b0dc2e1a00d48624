package main

import (
	"fmt"
	"testing"

	appErrors "github.com/unclebandit/customer-pipeline/internal/errors"
	"github.com/unclebandit/customer-pipeline/internal/model"
	"github.com/unclebandit/customer-pipeline/internal/queue"
	"github.com/unclebandit/customer-pipeline/internal/service"
)

type fakeSource struct {
	records  []model.RawCustomer
	sawLimit int
}

func (f *fakeSource) FetchPage(page, limit int) ([]model.RawCustomer, error) {
	f.sawLimit = limit
	start := (page - 1) * limit
	end := start + limit
	if start >= len(f.records) {
		return []model.RawCustomer{}, nil
	}
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[start:end], nil
}

type fakeRepo struct{}

func (f *fakeRepo) UpsertBatch(customers []model.Customer) (int, error) {
	return len(customers), nil
}

func (f *fakeRepo) List(offset, limit int) ([]model.Customer, int, error) {
	return []model.Customer{}, 0, nil
}

func (f *fakeRepo) GetByID(id string) (*model.Customer, error) {
	return nil, appErrors.NewCustomerNotFound(id)
}

func TestDecodeJob(t *testing.T) {
	job, err := decodeJob([]byte(`{"page_size": 5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.PageSize != 5 {
		t.Errorf("expected page_size 5, got %d", job.PageSize)
	}
}

func TestDecodeJobInvalidBody(t *testing.T) {
	if _, err := decodeJob([]byte("not json")); err == nil {
		t.Error("expected decode error for invalid body")
	}
}

func TestRunJobOverridesPageSize(t *testing.T) {
	records := make([]model.RawCustomer, 7)
	for i := range records {
		records[i] = model.RawCustomer{
			CustomerID: fmt.Sprintf("CUST%03d", i+1),
			FirstName:  "Alice",
			LastName:   "Smith",
			Email:      fmt.Sprintf("c%d@example.com", i+1),
		}
	}
	src := &fakeSource{records: records}

	base := &service.IngestionService{
		Source:       src,
		CustomerRepo: &fakeRepo{},
		PageSize:     10,
	}

	processed, err := runJob(queue.IngestJob{PageSize: 3}, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed != 7 {
		t.Errorf("expected 7 records processed, got %d", processed)
	}
	if src.sawLimit != 3 {
		t.Errorf("expected job page size 3 used for fetches, got %d", src.sawLimit)
	}
	if base.PageSize != 10 {
		t.Errorf("expected base service untouched, got %d", base.PageSize)
	}
}

func TestRunJobZeroPageSizeKeepsDefault(t *testing.T) {
	src := &fakeSource{}
	base := &service.IngestionService{
		Source:       src,
		CustomerRepo: &fakeRepo{},
		PageSize:     10,
	}

	if _, err := runJob(queue.IngestJob{}, base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.sawLimit != 10 {
		t.Errorf("expected configured page size 10, got %d", src.sawLimit)
	}
}
