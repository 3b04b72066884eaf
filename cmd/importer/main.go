package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/config"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/biotrack-hr/attendance-backend-go/internal/repository/postgresql"
	"github.com/biotrack-hr/attendance-backend-go/internal/service/etl"
)

// Copies punch rows from the terminal vendor database into the event store.
func main() {
	var days int
	flag.IntVar(&days, "days", 0, "import punches logged this many days back, 0 uses BATCH_DAYS_BACK")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if days < 1 {
		days = cfg.Batch.DaysBack
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), 4)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	importer, err := etl.NewImporter(cfg.TerminalURL(), cfg.Terminal.Table, postgresql.NewPunchRepository(db), slog.Default())
	if err != nil {
		log.Fatal("Error opening terminal database: ", err)
	}
	defer importer.Close()

	since := time.Now().In(cfg.Location()).AddDate(0, 0, -days)
	stored, err := importer.Run(context.Background(), since)
	if err != nil {
		log.Fatal("Import failed: ", err)
	}

	slog.Info("import complete", slog.Int64("new_events", stored))
}
