package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder journals hire attempts and daily reports to a SQLite database.
// Every row carries the id of the session that wrote it.
type SQLiteRecorder struct {
	db        *sql.DB
	mu        sync.Mutex
	sessionID string
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, sessionID: uuid.NewString()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s (session %s)", dbPath, r.sessionID)
	return r, nil
}

// SessionID identifies the rows written by this recorder.
func (r *SQLiteRecorder) SessionID() string {
	return r.sessionID
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS hires (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			boat_number INTEGER,
			start_hour  INTEGER,
			duration    REAL,
			payment     REAL,
			return_hour INTEGER,
			accepted    INTEGER NOT NULL,
			reason      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hires_session ON hires(session_id)`,

		`CREATE TABLE IF NOT EXISTS daily_reports (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id        TEXT NOT NULL,
			timestamp         INTEGER NOT NULL,
			total_money_taken REAL,
			total_hours_hired REAL,
			unused_boats      INTEGER,
			most_used_boat    INTEGER,
			most_used_hours   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_session ON daily_reports(session_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordHire(evt *HireEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO hires
		(session_id, timestamp, boat_number, start_hour, duration, payment, return_hour, accepted, reason)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		r.sessionID, time.Now().Unix(), evt.BoatNumber, evt.StartHour, evt.Duration,
		evt.Payment, evt.ReturnHour, evt.Accepted, evt.Reason,
	)
	return err
}

func (r *SQLiteRecorder) RecordReport(evt *ReportEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep := evt.Report
	_, err := r.db.Exec(`INSERT INTO daily_reports
		(session_id, timestamp, total_money_taken, total_hours_hired, unused_boats, most_used_boat, most_used_hours)
		VALUES (?,?,?,?,?,?,?)`,
		r.sessionID, time.Now().Unix(), rep.TotalMoneyTaken, rep.TotalHoursHired,
		rep.UnusedBoats, rep.MostUsedBoat, rep.MostUsedHours,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
