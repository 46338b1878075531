// Package main implements the entry point for the bukness API server, the
// REST backend for the book catalog and its users' favourite lists.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/bukness/bukness-api/internal/api"
	"github.com/bukness/bukness-api/internal/config"
	"github.com/bukness/bukness-api/internal/platform/logger"
	"github.com/bukness/bukness-api/internal/platform/mongodb"
	"github.com/bukness/bukness-api/internal/service/auth"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components:
// logging, the database connection, the stores, and the auth services.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	verifier := auth.NewBcryptVerifier()

	router := api.NewRouter(api.RouterDeps{
		UserStore:        mongodb.NewMongoUserStore(db, appLogger),
		BookStore:        mongodb.NewMongoBookStore(db, appLogger),
		JWTService:       jwtService,
		PasswordVerifier: verifier,
		PasswordHasher:   verifier,
		PublicDir:        "public",
	})

	return &application{
		config:      cfg,
		logger:      appLogger,
		mongoClient: client,
		router:      router,
	}, nil
}
