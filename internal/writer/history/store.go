// internal/writer/history/store.go
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	at                  TEXT    NOT NULL,
	battery_voltage     REAL    NOT NULL,
	battery_current     REAL    NOT NULL,
	array_voltage       REAL    NOT NULL,
	array_current       REAL    NOT NULL,
	charge_state        INTEGER NOT NULL,
	charge_state_name   TEXT    NOT NULL,
	heatsink_temp       REAL    NOT NULL,
	rts_temp            REAL    NOT NULL,
	power_out           REAL    NOT NULL,
	power_in            REAL    NOT NULL,
	battery_voltage_min REAL    NOT NULL,
	battery_voltage_max REAL    NOT NULL,
	amp_hours           REAL    NOT NULL,
	watt_hours          REAL    NOT NULL
);
CREATE INDEX IF NOT EXISTS samples_at ON samples (at);

CREATE TABLE IF NOT EXISTS rollups (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	at                  TEXT    NOT NULL,
	battery_voltage_min REAL    NOT NULL,
	battery_voltage_max REAL    NOT NULL,
	amp_hours           REAL    NOT NULL,
	watt_hours          REAL    NOT NULL,
	absorb_temp         REAL    NOT NULL,
	equalize_temp       REAL    NOT NULL,
	float_temp          REAL    NOT NULL
);
`

// Store keeps every sample and rollup in a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database and its tables.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	// One writer; avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) InsertSample(at time.Time, m tristar.Measurement) error {
	_, err := s.db.Exec(
		"INSERT INTO samples "+
			"(at, battery_voltage, battery_current, array_voltage, array_current, "+
			"charge_state, charge_state_name, heatsink_temp, rts_temp, power_out, power_in, "+
			"battery_voltage_min, battery_voltage_max, amp_hours, watt_hours) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		at.Format(time.RFC3339),
		m.BatteryVoltage,
		m.BatteryCurrent,
		m.ArrayVoltage,
		m.ArrayCurrent,
		int(m.State),
		m.State.String(),
		m.HeatsinkTemp,
		m.RTSTemp,
		m.PowerOut,
		m.PowerIn,
		m.BatteryVoltageMin,
		m.BatteryVoltageMax,
		m.AmpHours,
		m.WattHours,
	)
	if err != nil {
		return fmt.Errorf("history: insert sample: %w", err)
	}
	return nil
}

func (s *Store) InsertRollup(at time.Time, m tristar.Measurement) error {
	_, err := s.db.Exec(
		"INSERT INTO rollups "+
			"(at, battery_voltage_min, battery_voltage_max, amp_hours, watt_hours, "+
			"absorb_temp, equalize_temp, float_temp) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		at.Format(time.RFC3339),
		m.BatteryVoltageMin,
		m.BatteryVoltageMax,
		m.AmpHours,
		m.WattHours,
		m.AbsorbTemp,
		m.EqualizeTemp,
		m.FloatTemp,
	)
	if err != nil {
		return fmt.Errorf("history: insert rollup: %w", err)
	}
	return nil
}

// ---- writer.Sink adapters ----

// SampleSink feeds the samples table.
type SampleSink struct{ *Store }

func (SampleSink) Name() string { return "history_samples" }

func (s SampleSink) Write(at time.Time, m tristar.Measurement) error {
	return s.InsertSample(at, m)
}

// RollupSink feeds the rollups table.
type RollupSink struct{ *Store }

func (RollupSink) Name() string { return "history_rollups" }

func (s RollupSink) Write(at time.Time, m tristar.Measurement) error {
	return s.InsertRollup(at, m)
}
