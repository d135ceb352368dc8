// Package recorder persists status snapshots into sqlite for later
// analysis, one row per report emission. Each process run gets its own
// session ID so overlapping recordings stay separable.
package recorder

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/smartroom/controller/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	session_id   TEXT NOT NULL,
	recorded_at  TEXT NOT NULL,
	device_time  TEXT NOT NULL,
	temp_c       REAL NOT NULL,
	hum_pct      REAL NOT NULL,
	light_raw    INTEGER NOT NULL,
	led          INTEGER NOT NULL,
	buzz         INTEGER NOT NULL,
	alarm        TEXT NOT NULL,
	mode         TEXT NOT NULL,
	interval_ms  INTEGER NOT NULL,
	night_start  INTEGER NOT NULL,
	night_end    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_readings_session ON readings(session_id, recorded_at);
`

type Recorder struct {
	db        *sql.DB
	sessionID string
}

func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open recording database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create readings table: %w", err)
	}

	r := &Recorder{db: db, sessionID: uuid.NewString()}
	log.Info().Str("path", path).Str("session", r.sessionID).Msg("Telemetry recording enabled")
	return r, nil
}

// Record inserts one snapshot row. at is the host wall time of the insert;
// the device's own clock reading travels separately in device_time.
func (r *Recorder) Record(s model.Snapshot, at time.Time) error {
	_, err := r.db.Exec(
		`INSERT INTO readings (session_id, recorded_at, device_time, temp_c, hum_pct, light_raw, led, buzz, alarm, mode, interval_ms, night_start, night_end)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.sessionID,
		at.UTC().Format(time.RFC3339),
		s.WallTime.Format("15:04:05"),
		s.Readings.TempC,
		s.Readings.Humidity,
		s.Readings.Light,
		flag(s.LEDOn),
		flag(s.BuzzerOn),
		s.AlarmLevel.String(),
		string(s.Mode),
		s.ReportIntervalMs,
		s.NightWindow.StartHour,
		s.NightWindow.EndHour,
	)
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}

func (r *Recorder) SessionID() string {
	return r.sessionID
}

func (r *Recorder) Close() error {
	return r.db.Close()
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
