package repository

import (
	"database/sql"

	appErrors "github.com/unclebandit/customer-pipeline/internal/errors"
	"github.com/unclebandit/customer-pipeline/internal/model"
)

// CustomerRepositoryInterface defines the store operations used by services
type CustomerRepositoryInterface interface {
	UpsertBatch(customers []model.Customer) (int, error)
	List(offset, limit int) ([]model.Customer, int, error)
	GetByID(id string) (*model.Customer, error)
}

// CustomerRepository is the concrete Postgres implementation
type CustomerRepository struct {
	DB *sql.DB
}

const upsertQuery = `
	INSERT INTO customers (customer_id, first_name, last_name, email, phone, address, date_of_birth, account_balance, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (customer_id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		email = EXCLUDED.email,
		phone = EXCLUDED.phone,
		address = EXCLUDED.address,
		date_of_birth = EXCLUDED.date_of_birth,
		account_balance = EXCLUDED.account_balance,
		created_at = EXCLUDED.created_at
`

// UpsertBatch writes one page of customers inside a single transaction.
// Rows apply in order, so the last occurrence of an id within the batch
// wins. Any failure rolls the whole page back and leaves the store
// unchanged for that page.
func (r *CustomerRepository) UpsertBatch(customers []model.Customer) (int, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}

	written := 0
	for _, c := range customers {
		if c.CustomerID == "" || c.FirstName == "" || c.LastName == "" || c.Email == "" {
			tx.Rollback()
			return 0, appErrors.NewWrite(c.CustomerID, "missing required field")
		}

		_, err := tx.Exec(upsertQuery,
			c.CustomerID, c.FirstName, c.LastName, c.Email,
			c.Phone, c.Address, c.DateOfBirth, c.AccountBalance, c.CreatedAt,
		)
		if err != nil {
			tx.Rollback()
			return 0, appErrors.NewWrite(c.CustomerID, err.Error())
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

// List fetches customers ordered by customer_id ascending, plus the
// total row count.
func (r *CustomerRepository) List(offset, limit int) ([]model.Customer, int, error) {
	query := `
		SELECT customer_id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, ''), date_of_birth, account_balance, created_at
		FROM customers
		ORDER BY customer_id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.DateOfBirth, &c.AccountBalance, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// GetByID fetches a single customer by its identifier
func (r *CustomerRepository) GetByID(id string) (*model.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, ''), date_of_birth, account_balance, created_at
		FROM customers
		WHERE customer_id = $1
	`
	var c model.Customer
	err := r.DB.QueryRow(query, id).Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.DateOfBirth, &c.AccountBalance, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
