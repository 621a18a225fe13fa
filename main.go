package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/sportscal/cliparse"
	"github.com/danielhkuo/sportscal/db"
	"github.com/danielhkuo/sportscal/middleware"
	"github.com/danielhkuo/sportscal/router"
	"github.com/danielhkuo/sportscal/store"
)

func main() {
	var err error

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, err := middleware.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Error("Error parsing log level", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(middleware.NewLogger(os.Stdout, level))

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		slog.Error("Error parsing database type", "error", err)
		os.Exit(1)
	}

	// Open the database, creating and seeding it on first run
	dbConn, err := db.Open(context.Background(), db.Options{
		Dialect:    dialect,
		DSN:        cfg.DatabaseURL,
		SchemaPath: cfg.SchemaPath,
		SeedPath:   cfg.SeedPath,
	})
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create router
	mux := router.NewRouter(store.New(dbConn, dialect), cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Shutdown(context.Background())
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "database", cfg.DatabaseType, "static", cfg.StaticDir)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
