package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"liga-app/internal/source"
	"liga-app/internal/store"
	"liga-app/internal/web"
)

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		_ = godotenv.Load(".env", ".env.local")
	}

	appStore := openStore()
	seedStore(appStore)

	server := web.NewServer(appStore)

	r := chi.NewRouter()
	r.Mount("/", server.Routes())

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		log.Println("starting in lambda mode")
		adapter := httpadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	addr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func openStore() store.Store {
	if dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN")); dsn != "" {
		pgStore, err := store.NewPostgresStore(dsn, store.PostgresOptions{
			MigrationsDir: os.Getenv("POSTGRES_MIGRATIONS_DIR"),
		})
		if err != nil {
			log.Fatalf("postgres store: %v", err)
		}
		return pgStore
	}
	if dbPath := strings.TrimSpace(os.Getenv("DB_PATH")); dbPath != "" {
		sqliteStore, err := store.NewSQLiteStore(dbPath, store.SQLiteOptions{
			MigrationsDir: os.Getenv("DB_MIGRATIONS_DIR"),
		})
		if err != nil {
			log.Fatalf("sqlite store: %v", err)
		}
		return sqliteStore
	}
	return store.NewMemoryStore()
}

// seedStore loads the initial season document from the YAML data tree or a
// compiled JSON payload when the store is still empty.
func seedStore(appStore store.Store) {
	if _, ok := appStore.GetSeason(); ok {
		return
	}
	if dataDir := strings.TrimSpace(os.Getenv("LIGA_DATA_DIR")); dataDir != "" {
		doc, err := source.LoadTree(dataDir)
		if err != nil {
			log.Fatalf("load data tree: %v", err)
		}
		if err := appStore.SaveSeason(doc, "seed from data tree"); err != nil {
			log.Fatalf("seed store: %v", err)
		}
		return
	}
	if payload := strings.TrimSpace(os.Getenv("LIGA_SEASON_JSON")); payload != "" {
		doc, err := source.LoadJSON(payload)
		if err != nil {
			log.Fatalf("load season payload: %v", err)
		}
		if err := appStore.SaveSeason(doc, "seed from payload"); err != nil {
			log.Fatalf("seed store: %v", err)
		}
	}
}
