package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"kanbanlive/internal/config"
	"kanbanlive/migrations"
)

// Applies the embedded SQL migrations to the configured database.
// Invoked once at deployment, before the server or the seeder run.
func main() {
	cfg := config.Load()

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatalf("❌ failed to load migrations: %v", err)
	}

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(cfg.DBUser), url.QueryEscape(cfg.DBPassword),
		cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		log.Fatalf("❌ failed to init migrator: %v", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("✅ Schema already up to date")
			return
		}
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schema migrated")
}
