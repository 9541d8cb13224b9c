package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/solar-crm/internal/infra/database"
	"github.com/xavierca1/solar-crm/internal/infra/http/handlers"
	"github.com/xavierca1/solar-crm/internal/infra/http/middleware"
	"github.com/xavierca1/solar-crm/internal/infra/integration/googlesheets"
	"github.com/xavierca1/solar-crm/internal/infra/mail"
	"github.com/xavierca1/solar-crm/internal/infra/queue"
	"github.com/xavierca1/solar-crm/internal/sheet"
	"github.com/xavierca1/solar-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer db.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	salespersonRepo := database.NewSalespersonRepository(db)
	syncLogRepo := database.NewSyncLogRepository(db)

	// 2. Gateways and adapters
	sheetsClient := googlesheets.NewClient()
	sheetCfg := sheetConfigFromEnv()

	var rabbitMQ *queue.RabbitMQ
	var producer *queue.Producer
	if rabbitURL := os.Getenv("RABBITMQ_URL"); rabbitURL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(rabbitURL)
		if err != nil {
			log.Fatalf("connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	var mailer usecase.ReportMailer
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if os.Getenv("MAIL_HOST") != "" && adminEmail != "" {
		mailer = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"),
			envInt("MAIL_PORT", 587),
			os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_USER"),
		)
	}

	// 3. Use cases
	var reportPublisher usecase.ReportPublisher
	if producer != nil {
		reportPublisher = producer
	}
	syncUC := usecase.NewSyncSheetUseCase(
		sheetsClient, leadRepo, salespersonRepo, syncLogRepo,
		reportPublisher, mailer, adminEmail, sheetCfg,
	)

	// 4. Worker consuming queued sync requests
	if rabbitMQ != nil {
		worker := queue.NewWorker(rabbitMQ.Ch, syncUC)
		go worker.Start(queue.SyncQueue)
	}

	// 5. Handlers
	defaultSpreadsheetID := os.Getenv("DEFAULT_SPREADSHEET_ID")
	defaultSheetID := os.Getenv("DEFAULT_SHEET_ID")

	var enqueuer handlers.SyncEnqueuer
	if producer != nil {
		enqueuer = producer
	}
	syncHandler := handlers.NewSyncHandler(syncUC, enqueuer, syncLogRepo, defaultSpreadsheetID, defaultSheetID)
	leadHandler := handlers.NewLeadHandler(leadRepo)
	salespersonHandler := handlers.NewSalespersonHandler(salespersonRepo)

	var amqpConn *amqp.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn, defaultSpreadsheetID)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Post("/api/sync-google-sheet", syncHandler.HandleSync)
	r.Get("/api/fetch-google-sheet", syncHandler.HandleFetch)
	r.Get("/api/sync-log", syncHandler.HandleSyncLog)

	r.Get("/api/leads", leadHandler.List)
	r.Post("/api/leads", leadHandler.Create)
	r.Put("/api/leads/{id}", leadHandler.Update)
	r.Delete("/api/leads/{id}", leadHandler.Delete)
	r.Post("/api/leads/capture", leadHandler.Capture)

	r.Get("/api/salespersons", salespersonHandler.List)
	r.Post("/api/salespersons", salespersonHandler.Create)
	r.Delete("/api/salespersons/{id}", salespersonHandler.Delete)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("solar-crm API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

// sheetConfigFromEnv layers environment overrides on top of the default
// alias and keyword tables.
func sheetConfigFromEnv() sheet.Config {
	cfg := sheet.DefaultConfig()
	if v := envInt("SHEET_HEADER_SCAN_LIMIT", 0); v > 0 {
		cfg.HeaderScanLimit = v
	}
	if v := envInt("SHEET_MAX_LEAD_COLUMN_LEN", 0); v > 0 {
		cfg.MaxLeadColumnLen = v
	}
	if os.Getenv("SHEET_PHONE_REQUIRED") == "true" {
		cfg.PhoneRequired = true
	}
	return cfg
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
