package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	emailPkg "experiencebuddy/internal/adapters/email"
	web "experiencebuddy/internal/adapters/http"
	"experiencebuddy/internal/adapters/storage"
	accountStore "experiencebuddy/internal/adapters/storage/account"
	experienceStore "experiencebuddy/internal/adapters/storage/experience"
	"experiencebuddy/internal/application/orchestrators"
	"experiencebuddy/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Experience storage: in-memory unless a database path is configured.
	var expStore experienceStore.Store
	if cfg.DBPath != "" {
		dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		// Connection pool settings for WAL mode
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)

		if err := db.Ping(); err != nil {
			log.Fatalf("database unreachable: %v", err)
		}
		if err := storage.InitDB(db); err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		expStore = experienceStore.NewSQLiteStore(storage.NewTimedDB(db))
		log.Printf("Experience store: sqlite (%s)", cfg.DBPath)
	} else {
		expStore = experienceStore.NewMemoryStore()
		log.Println("Experience store: in-memory (set EXPBUDDY_DB for persistence)")
	}

	acctStore := accountStore.NewMemoryStore()
	stores := &web.Stores{
		ExperienceStore: expStore,
		AccountStore:    acctStore,
	}

	// Seed the demo sign-in account and the initial listing set
	seedAcctDeps := orchestrators.SeedDemoAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedDemoAccount(context.Background(), seedAcctDeps, cfg.DemoEmail, cfg.DemoName, cfg.DemoPassword); err != nil {
		log.Fatalf("failed to seed demo account: %v", err)
	}
	seedExpDeps := orchestrators.SeedExperiencesDeps{ExperienceStore: expStore}
	if err := orchestrators.ExecuteSeedExperiences(context.Background(), seedExpDeps); err != nil {
		log.Fatalf("failed to seed experiences: %v", err)
	}

	// Configure email sender
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom), cfg.EmailFrom, cfg.EmailReplyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.EmailFrom, cfg.EmailReplyTo)
		if cfg.Env == "production" {
			log.Println("WARNING: EXPBUDDY_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set EXPBUDDY_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores)

	log.Printf("ExperienceBuddy %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
