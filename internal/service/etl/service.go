package etl

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"

	// SQL Server driver for the terminal vendor database.
	_ "github.com/microsoft/go-mssqldb"
)

// Importer copies punch events from the terminal vendor database into the
// canonical event store. Rows already imported are skipped by source id, so
// repeated runs converge instead of duplicating.
type Importer struct {
	terminal  *sql.DB
	table     string
	punchRepo punch.Repository
	logger    *slog.Logger
}

// NewImporter opens the terminal connection. The table name comes from
// configuration because vendor installations differ.
func NewImporter(terminalURL, table string, punchRepo punch.Repository, logger *slog.Logger) (*Importer, error) {
	db, err := sql.Open("sqlserver", terminalURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal database: %w", err)
	}
	db.SetMaxOpenConns(2)

	return &Importer{
		terminal:  db,
		table:     table,
		punchRepo: punchRepo,
		logger:    logger,
	}, nil
}

func (i *Importer) Close() error {
	return i.terminal.Close()
}

// Run pulls terminal rows logged on or after since and upserts them into the
// event store. Returns the number of newly stored events.
func (i *Importer) Run(ctx context.Context, since time.Time) (int64, error) {
	if err := i.terminal.PingContext(ctx); err != nil {
		return 0, fmt.Errorf("terminal database unreachable: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT [ID], [EMPLOYEECODE], [LOGDATETIME], [DEVICENAME], [SERIALNUMBER], [DIRECTION]
		FROM %s
		WHERE [LOGDATETIME] >= @since
		ORDER BY [LOGDATETIME] ASC
	`, i.table)

	rows, err := i.terminal.QueryContext(ctx, query, sql.Named("since", since))
	if err != nil {
		return 0, fmt.Errorf("failed to query terminal logs: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var (
			sourceID     int64
			employeeCode string
			loggedAt     time.Time
			deviceName   sql.NullString
			serialNumber sql.NullString
			direction    sql.NullString
		)
		if err := rows.Scan(&sourceID, &employeeCode, &loggedAt, &deviceName, &serialNumber, &direction); err != nil {
			return 0, fmt.Errorf("failed to scan terminal log: %w", err)
		}
		events = append(events, terminalEvent(sourceID, employeeCode, loggedAt, deviceName, serialNumber, direction))
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read terminal logs: %w", err)
	}

	if len(events) == 0 {
		i.logger.Info("terminal import found no rows", slog.String("since", since.Format("2006-01-02")))
		return 0, nil
	}

	stored, err := i.punchRepo.BulkUpsert(ctx, events)
	if err != nil {
		return 0, fmt.Errorf("failed to store imported punches: %w", err)
	}

	i.logger.Info("terminal import finished",
		slog.Int("fetched", len(events)),
		slog.Int64("stored", stored),
	)

	return stored, nil
}

// terminalEvent maps one vendor row onto the event store shape: the
// LOGDATETIME timestamp splits into a UTC midnight date and a time-of-day,
// and nullable device columns collapse to empty strings.
func terminalEvent(sourceID int64, employeeCode string, loggedAt time.Time, deviceName, serialNumber, direction sql.NullString) punch.Event {
	y, m, d := loggedAt.Date()
	return punch.Event{
		SourceID:     sourceID,
		EmployeeID:   employeeCode,
		Date:         time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Time:         timeutil.FromTime(loggedAt),
		Direction:    direction.String,
		Terminal:     deviceName.String,
		SerialNumber: serialNumber.String,
	}
}
