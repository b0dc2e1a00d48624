// internal/service/normalizer.go
package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/customer-pipeline/internal/model"
)

const dateOfBirthLayout = "2006-01-02"

// createdAtLayouts: RFC3339 first (trailing Z or explicit offset), then
// a bare timestamp without offset.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// NormalizeCustomer converts a raw source record into a typed customer.
// It never fails: optional fields that do not parse are dropped, and a
// missing or unparseable balance becomes zero. Required strings pass
// through untouched; the upsert writer rejects them if empty.
func NormalizeCustomer(raw model.RawCustomer) model.Customer {
	c := model.Customer{
		CustomerID:     raw.CustomerID,
		FirstName:      raw.FirstName,
		LastName:       raw.LastName,
		Email:          raw.Email,
		Phone:          raw.Phone,
		Address:        raw.Address,
		AccountBalance: parseBalance(raw.AccountBalance),
	}

	if raw.DateOfBirth != "" {
		if t, err := time.Parse(dateOfBirthLayout, raw.DateOfBirth); err == nil {
			c.DateOfBirth = &t
		}
	}

	if raw.CreatedAt != "" {
		for _, layout := range createdAtLayouts {
			if t, err := time.Parse(layout, raw.CreatedAt); err == nil {
				c.CreatedAt = &t
				break
			}
		}
	}

	return c
}

// parseBalance reads the raw JSON literal as an exact decimal. Quoted
// and unquoted numbers are both accepted.
func parseBalance(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
