// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCustomerNotFound is a sentinel error for read-side lookup misses
type ErrCustomerNotFound struct {
	CustomerID string
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("customer with ID %s not found", e.CustomerID)
}

// Helper constructor
func NewCustomerNotFound(id string) error {
	return &ErrCustomerNotFound{CustomerID: id}
}

// ErrTransport covers network failures, timeouts and non-2xx responses
// from the source API
type ErrTransport struct {
	URL    string
	Status int
	Err    error
}

func (e *ErrTransport) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("source request to %s returned status %d", e.URL, e.Status)
}

func NewTransport(url string, status int, err error) error {
	return &ErrTransport{URL: url, Status: status, Err: err}
}

// ErrMalformedResponse means the source body was not valid JSON or
// lacked the expected shape
type ErrMalformedResponse struct {
	URL    string
	Reason string
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.URL, e.Reason)
}

func NewMalformedResponse(url, reason string) error {
	return &ErrMalformedResponse{URL: url, Reason: reason}
}

// ErrWrite is raised by the upsert writer on constraint violations or
// missing required fields; the whole page rolls back
type ErrWrite struct {
	CustomerID string
	Reason     string
}

func (e *ErrWrite) Error() string {
	if e.CustomerID == "" {
		return fmt.Sprintf("upsert failed: %s", e.Reason)
	}
	return fmt.Sprintf("upsert failed for customer %s: %s", e.CustomerID, e.Reason)
}

func NewWrite(customerID, reason string) error {
	return &ErrWrite{CustomerID: customerID, Reason: reason}
}
