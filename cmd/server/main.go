package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "association-reports/internal/adapters/web"
	"association-reports/internal/app"
	"association-reports/internal/data"
	"association-reports/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	dataURL := os.Getenv("DATA_API_URL")
	if dataURL == "" {
		dataURL = "http://localhost:3000"
	}
	client := data.NewClient(dataURL)

	// The database is optional: without it, templates are limited to the
	// built-in defaults and no generation audit log is kept.
	var store db.Store
	if os.Getenv("DATABASE_URL") != "" {
		pool, err := db.NewPool(ctx)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		store = db.NewStore(pool)
	} else {
		log.Println("Warning: DATABASE_URL not set — stored templates and report log disabled")
	}

	svc := app.NewReportService(client, store)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("report server starting on :%s (data API: %s)", port, dataURL)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
