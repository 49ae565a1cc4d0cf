package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gasdesk/infrastructure/audit"
	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
	httpserver "gasdesk/infrastructure/http"
	"gasdesk/infrastructure/rbac"
	"gasdesk/infrastructure/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("load .env failed", slog.Any("err", err))
	}

	addr := getenv("APP_ADDR", ":8080")
	dbPath := getenv("SQLITE_PATH", "gasdesk.db")
	apiBase := getenv("ERP_API_BASE_URL", "http://localhost:4000/api")

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	api := erp.NewClient(apiBase)
	sessionCache := cache.NewUserSessionCache()
	rbacCache := cache.NewRbacRolesCache()
	rbacSvc := rbac.New(rbacCache)
	auditSvc := audit.NewService()

	server := httpserver.NewServer(addr, db, api, sessionCache, rbacSvc, rbacCache, auditSvc)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("gasdesk listening on %s (erp %s)", addr, apiBase)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
