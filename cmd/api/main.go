package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/Mohammad-Safadi/elsultan/internal/auth"
	"github.com/Mohammad-Safadi/elsultan/internal/catalog"
	"github.com/Mohammad-Safadi/elsultan/internal/db"
	"github.com/Mohammad-Safadi/elsultan/internal/export"
	"github.com/Mohammad-Safadi/elsultan/internal/llm"
	"github.com/Mohammad-Safadi/elsultan/internal/quote"
	"github.com/Mohammad-Safadi/elsultan/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATA_DIR",
		"OPERATOR_USERS",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	taxRate := quote.DefaultTaxRate
	if v := os.Getenv("TAX_RATE"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			log.Fatalf("Invalid TAX_RATE: %v", err)
		}
		taxRate = rate
	}

	policy, ok := quote.ParseDuplicatePolicy(os.Getenv("DUPLICATE_POLICY"))
	if !ok {
		log.Fatalf("Invalid DUPLICATE_POLICY: %q (want merge or append)", os.Getenv("DUPLICATE_POLICY"))
	}

	cur := currency.USD
	if v := os.Getenv("CURRENCY"); v != "" {
		parsed, err := currency.ParseISO(v)
		if err != nil {
			log.Fatalf("Invalid CURRENCY: %v", err)
		}
		cur = parsed
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}

	// ───────────────────────── STORAGE ─────────────────────────
	database, err := db.OpenBadger(os.Getenv("DATA_DIR"))
	if err != nil {
		log.Fatal("Badger init failed:", err)
	}
	defer database.Close()

	// ───────────────────────── CATALOG ─────────────────────────
	cat, err := catalog.Default()
	if err != nil {
		log.Fatal("Catalog load failed:", err)
	}

	// ───────────────────────── QUOTE STORE ─────────────────────────
	quoteRepo := quote.NewBadgerRepository(database)
	store, err := quote.NewStore(context.Background(), quoteRepo, policy)
	if err != nil {
		log.Fatal("Quote store init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo, err := auth.NewEnvUserRepository(os.Getenv("OPERATOR_USERS"))
	if err != nil {
		log.Fatal("Operator list invalid:", err)
	}
	authService := auth.NewService(userRepo)

	// ───────────────────────── SUGGESTIONS ─────────────────────────
	var suggestClient llm.Client
	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		suggestClient = llm.NewGeminiClient()
	case os.Getenv("LLAMA_API_KEY") != "":
		suggestClient = llm.NewLLaMAClient()
	default:
		log.Println("No LLM key configured, package suggestions disabled")
	}

	// ───────────────────────── EXPORT ─────────────────────────
	exportService := export.NewService("Elsultan Halls", taxRate, cur)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(cat),
		Quote:   quote.NewHandler(store, cat, taxRate),
		Export:  export.NewHandler(store, exportService, export.NewTextRenderer(exportService), exportDir),
		Suggest: llm.NewHandler(store, suggestClient),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
