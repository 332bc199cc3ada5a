package main

import (
	"context"
	"fmt"
	"os"

	"todoapi/internal/config"
	"todoapi/internal/database"
	"todoapi/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dbview: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "Hints:")
		fmt.Fprintln(os.Stderr, "  - start the API once so the database file gets created and seeded")
		fmt.Fprintln(os.Stderr, "  - check DATABASE_PATH points at the same file the API uses")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := report.Open(database.DSN(cfg.DatabasePath, true))
	if err != nil {
		return err
	}
	defer db.Close()

	snapshot, err := report.Load(context.Background(), db)
	if err != nil {
		return err
	}
	return report.Render(os.Stdout, snapshot)
}
