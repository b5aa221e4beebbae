package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/stayloop/stayloop/internal/config"
	"github.com/stayloop/stayloop/internal/logger"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	dir := flag.String("dir", "./migrations", "Directory containing *.up.sql files")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(*dir, "*.up.sql"))
	if err != nil {
		logger.Fatalw("Failed to list migrations", "error", err)
	}
	if len(files) == 0 {
		logger.Fatalw("No migrations found", "dir", *dir)
	}
	sort.Strings(files)

	if *dryRun {
		for _, f := range files {
			sql, err := os.ReadFile(f)
			if err != nil {
				logger.Fatalw("Failed to read migration", "file", f, "error", err)
			}
			fmt.Printf("-- %s\n%s\n", filepath.Base(f), strings.TrimSpace(string(sql)))
		}
		return
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)
	db, err := sqlx.Connect("postgres", cfg.Postgres.GetDSN())
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			logger.Fatalw("Failed to read migration", "file", f, "error", err)
		}
		logger.Infow("Applying migration", "file", filepath.Base(f))
		if _, err := db.Exec(string(sql)); err != nil {
			logger.Fatalw("Migration failed", "file", filepath.Base(f), "error", err)
		}
	}

	logger.Info("Migrations completed successfully")
}
