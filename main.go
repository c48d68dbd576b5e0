package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/kultura-quest/booths"
	"github.com/danielhkuo/kultura-quest/cliparse"
	"github.com/danielhkuo/kultura-quest/db"
	"github.com/danielhkuo/kultura-quest/middleware"
	"github.com/danielhkuo/kultura-quest/router"
)

func main() {
	var err error

	// Load .env if present (ok if missing in prod)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open SQLite database (created on first run)
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	if info, err := os.Stat(cfg.DBPath); err == nil {
		slog.Info("Database ready", "path", cfg.DBPath, "size", humanize.Bytes(uint64(info.Size())))
	} else {
		slog.Info("Database ready", "path", cfg.DBPath)
	}

	// Create router
	mux := router.NewRouter(conn, cfg, booths.Default())

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
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "static_dir", cfg.StaticDir)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
