// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/customer-pipeline/internal/errors"
	"github.com/unclebandit/customer-pipeline/internal/model"
	"github.com/unclebandit/customer-pipeline/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

// customerResponse is the wire shape for stored customers: dates as
// YYYY-MM-DD / RFC3339 strings or null, balance as a plain number.
type customerResponse struct {
	CustomerID     string  `json:"customer_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	DateOfBirth    *string `json:"date_of_birth"`
	AccountBalance float64 `json:"account_balance"`
	CreatedAt      *string `json:"created_at"`
}

func toResponse(c model.Customer) customerResponse {
	resp := customerResponse{
		CustomerID: c.CustomerID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
	}

	if c.DateOfBirth != nil {
		dob := c.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	if c.CreatedAt != nil {
		created := c.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &created
	}

	balance, _ := c.AccountBalance.Float64()
	resp.AccountBalance = balance

	return resp
}

// ListCustomers returns one page of stored customers
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := c.CustomerService.ListCustomers(page, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := make([]customerResponse, len(result.Customers))
	for i, cust := range result.Customers {
		data[i] = toResponse(cust)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"data":  data,
		"total": result.Total,
		"page":  result.Page,
		"limit": result.Limit,
	})
}

// GetCustomer returns a single stored customer by ID
func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := c.CustomerService.GetCustomer(id)
	if err != nil {
		var notFound *appErrors.ErrCustomerNotFound
		if errors.As(err, &notFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Customer not found"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": toResponse(*customer)})
}

// Health reports service liveness
func (c *CustomerController) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "customer-pipeline",
	})
}
