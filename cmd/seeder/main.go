// cmd/seeder/main.go
//
// Generates the mock provider's customer dataset. A few rows carry
// deliberately bad optional fields so a full pipeline run exercises the
// tolerant parsing paths.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

type seedCustomer struct {
	CustomerID     string `json:"customer_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DateOfBirth    any    `json:"date_of_birth"`
	AccountBalance any    `json:"account_balance"`
	CreatedAt      any    `json:"created_at"`
}

var firstNames = []string{"Alice", "Bob", "Carol", "David", "Emma", "Frank", "Grace", "Henry", "Irene", "James"}
var lastNames = []string{"Smith", "Jones", "Brown", "Taylor", "Wilson", "Davis", "Evans", "Thomas", "Walker", "White"}

func main() {
	out := "seed/customers.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	customers := make([]seedCustomer, 0, 25)
	for i := 1; i <= 25; i++ {
		first := firstNames[(i-1)%len(firstNames)]
		last := lastNames[(i-1)%len(lastNames)]

		customers = append(customers, seedCustomer{
			CustomerID:     fmt.Sprintf("CUST%03d", i),
			FirstName:      first,
			LastName:       last,
			Email:          fmt.Sprintf("%s.%s%d@example.com", first, last, i),
			Phone:          fmt.Sprintf("+1-555-01%02d", i),
			Address:        fmt.Sprintf("%d Main Street", 100+i),
			DateOfBirth:    fmt.Sprintf("19%02d-%02d-%02d", 60+(i%30), (i%12)+1, (i%28)+1),
			AccountBalance: float64(100*i) + 0.50,
			CreatedAt:      fmt.Sprintf("2023-%02d-%02dT10:30:00Z", (i%12)+1, (i%28)+1),
		})
	}

	// Edge rows for the tolerant parsing paths
	customers[4].DateOfBirth = "not-a-date"
	customers[9].AccountBalance = "1050.75" // quoted decimal
	customers[14].AccountBalance = nil
	customers[19].DateOfBirth = nil
	customers[19].CreatedAt = nil
	customers[22].Phone = ""
	customers[22].Address = ""

	content, err := json.MarshalIndent(customers, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(out, content, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", out, err)
	}

	fmt.Printf("Seeded %d customers into %s\n", len(customers), out)
}
