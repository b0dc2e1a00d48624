// internal/model/customer.go
package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the stored record, keyed by customer_id.
type Customer struct {
	CustomerID     string          `db:"customer_id" json:"customer_id"`
	FirstName      string          `db:"first_name" json:"first_name"`
	LastName       string          `db:"last_name" json:"last_name"`
	Email          string          `db:"email" json:"email"`
	Phone          string          `db:"phone" json:"phone"`
	Address        string          `db:"address" json:"address"`
	DateOfBirth    *time.Time      `db:"date_of_birth" json:"date_of_birth"`
	AccountBalance decimal.Decimal `db:"account_balance" json:"account_balance"`
	CreatedAt      *time.Time      `db:"created_at" json:"created_at"`
}

// RawCustomer is the wire shape returned by the source API. The balance
// stays a raw JSON literal so numeric and quoted values both reach the
// normalizer intact.
type RawCustomer struct {
	CustomerID     string          `json:"customer_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	DateOfBirth    string          `json:"date_of_birth"`
	AccountBalance json.RawMessage `json:"account_balance"`
	CreatedAt      string          `json:"created_at"`
}
