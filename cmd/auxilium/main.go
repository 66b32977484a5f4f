package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/auxilium-app/auxilium/internal/app"
	"github.com/auxilium-app/auxilium/internal/config"
	"github.com/auxilium-app/auxilium/internal/logger"
	"github.com/auxilium-app/auxilium/pkg/sheets"
)

var (
	version = "dev"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "auxilium.db", "SQLite database path")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	httpLog := flag.Bool("httplog", false, "Log every HTTP request")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Auxilium - community service points backend

Usage:
  auxilium [options]

Options:
  -port int      HTTP server port (default 8080)
  -db string     SQLite database path (default "auxilium.db")
  -loglevel str  Log level: debug, info, warn, error (default "info")
  -httplog       Log every HTTP request
  -version       Show version and exit
  -help          Show this help message

Environment:
  JWT_SECRET, JWT_REFRESH_SECRET     Token signing secrets
  JWT_EXPIRY, JWT_REFRESH_EXPIRY     Token lifetimes (Go durations)
  BOOTSTRAP_ADMIN_EMAIL / _PASSWORD  First superadmin credentials
  SHEETS_BASE_URL                    Spreadsheet host (default docs.google.com)
  SHEETS_DIR                         Read sheets from local xlsx files instead

Examples:
  auxilium                           # Run on port 8080 with auxilium.db
  auxilium -port 80 -db /data/aux.db # Production example
  SHEETS_DIR=./sheets auxilium       # Serve spreadsheets from local files
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("auxilium %s\n", version)
		os.Exit(0)
	}

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))
	if *httpLog {
		appLog.EnableHTTPLogging()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	var sheetsClient sheets.Client
	if cfg.SheetsDir != "" {
		sheetsClient = sheets.NewXLSXClient(cfg.SheetsDir, appLog)
	} else {
		sheetsClient = sheets.NewHTTPClient(cfg.SheetsBaseURL, appLog)
	}

	a, err := app.New(appLog, *dbPath, cfg, sheetsClient)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", *port)
	if err := a.Run(addr); err != nil {
		log.Fatal(err)
	}
}
