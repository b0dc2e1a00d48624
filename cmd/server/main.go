package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/unclebandit/customer-pipeline/internal/controller"
	"github.com/unclebandit/customer-pipeline/internal/db"
	"github.com/unclebandit/customer-pipeline/internal/handler"
	"github.com/unclebandit/customer-pipeline/internal/queue"
	"github.com/unclebandit/customer-pipeline/internal/repository"
	"github.com/unclebandit/customer-pipeline/internal/service"
	"github.com/unclebandit/customer-pipeline/internal/source"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	conn, err := db.Connect()
	if err != nil {
		log.Fatal("failed to connect to DB: ", err)
	}
	defer conn.Close()

	if err := db.EnsureSchema(conn); err != nil {
		log.Fatal("failed to ensure schema: ", err)
	}
	log.Println("✅ Connected to database")

	sourceURL := os.Getenv("MOCK_SERVER_URL")
	if sourceURL == "" {
		sourceURL = "http://mock-server:5000"
	}

	pageSize := service.DefaultPageSize
	if v, err := strconv.Atoi(os.Getenv("INGEST_PAGE_SIZE")); err == nil && v > 0 {
		pageSize = v
	}

	customerRepo := &repository.CustomerRepository{DB: conn}

	ingestionService := &service.IngestionService{
		Source:       source.NewClient(sourceURL),
		CustomerRepo: customerRepo,
		PageSize:     pageSize,
	}
	customerService := &service.CustomerService{
		CustomerRepo: customerRepo,
	}

	// Async ingest jobs go to RabbitMQ when configured, otherwise to an
	// in-process subscriber.
	var q queue.Queue
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		q = &queue.AMQPQueue{URL: amqpURL}
	} else {
		mem := queue.NewInMemoryQueue()
		queue.StartIngestionSubscriber(mem, func(pageSize int) (int, error) {
			run := *ingestionService
			if pageSize > 0 {
				run.PageSize = pageSize
			}
			return run.Run()
		})
		q = mem
	}

	customerController := &controller.CustomerController{
		CustomerService: customerService,
	}
	ingestHandler := &handler.IngestHandler{
		Service: ingestionService,
		Queue:   q,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Ingestion routes
	r.Post("/api/ingest", ingestHandler.Ingest)
	r.Post("/api/ingest/async", ingestHandler.IngestAsync)

	// Read routes
	r.Get("/api/customers", customerController.ListCustomers)
	r.Get("/api/customers/{id}", customerController.GetCustomer)
	r.Get("/api/health", customerController.Health)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
