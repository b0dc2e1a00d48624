// internal/service/customer_service.go
package service

import (
	"github.com/unclebandit/customer-pipeline/internal/model"
	"github.com/unclebandit/customer-pipeline/internal/repository"
)

// CustomerService is the read-side query path over the store. It is
// stateless and independent of ingestion.
type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
}

// ListResult carries one page of customers plus the echoed paging values
type ListResult struct {
	Customers []model.Customer
	Total     int
	Page      int
	Limit     int
}

// ListCustomers fetches customers ordered by customer_id ascending.
// Invalid paging values are clamped to defaults, never rejected.
func (s *CustomerService) ListCustomers(page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	customers, total, err := s.CustomerRepo.List(offset, limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Customers: customers,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}, nil
}

// GetCustomer fetches a single customer by ID
func (s *CustomerService) GetCustomer(id string) (*model.Customer, error) {
	return s.CustomerRepo.GetByID(id)
}
