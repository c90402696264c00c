// Package store is the gateway to the two persisted collections: day
// records keyed by dd/mm/yyyy and API key records keyed by subject type.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	_ "modernc.org/sqlite"

	"taskmaster/internal/shared/models"
)

// Gateway owns the store connection shared by all requests. A gateway
// whose connection could not be established is still usable: every
// operation returns ErrUnavailable and Connected reports false.
type Gateway struct {
	db     *sql.DB
	logger *log.Logger
}

// New opens the store at dsn. Connection failure does not abort the
// process; it degrades the gateway to the disconnected state.
func New(dsn string, logger *log.Logger) *Gateway {
	db, err := sql.Open("sqlite", dsn)
	if err == nil {
		err = db.Ping()
	}
	if err == nil {
		err = migrate(db)
	}
	if err != nil {
		if logger != nil {
			logger.Printf("store connection failed, running disconnected: %v", err)
		}
		return &Gateway{logger: logger}
	}
	return &Gateway{db: db, logger: logger}
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS days (
			day TEXT PRIMARY KEY,
			records TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS api_keys (
			type TEXT PRIMARY KEY,
			key TEXT NOT NULL
		);
	`)
	return err
}

// Connected reports whether the startup connection succeeded.
func (g *Gateway) Connected() bool {
	return g.db != nil
}

func (g *Gateway) Close() error {
	if g.db == nil {
		return nil
	}
	return g.db.Close()
}

// fail logs an unexpected store error and collapses it to ErrUnavailable
// so sql-level failures never cross the gateway boundary.
func (g *Gateway) fail(op string, err error) error {
	if g.logger != nil {
		g.logger.Printf("store %s: %v", op, err)
	}
	return ErrUnavailable
}

// GetAll returns every day record in insertion order.
func (g *Gateway) GetAll(ctx context.Context) ([]models.DayRecord, error) {
	if g.db == nil {
		return nil, ErrUnavailable
	}
	rows, err := g.db.QueryContext(ctx, `SELECT day, records FROM days ORDER BY rowid`)
	if err != nil {
		return nil, g.fail("get all", err)
	}
	defer rows.Close()
	var out []models.DayRecord
	for rows.Next() {
		var rec models.DayRecord
		var raw []byte
		if err := rows.Scan(&rec.Day, &raw); err != nil {
			return nil, g.fail("get all", err)
		}
		if err := json.Unmarshal(raw, &rec.Records); err != nil {
			return nil, g.fail("get all", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, g.fail("get all", err)
	}
	return out, nil
}

// GetDay looks up one day record by its exact storage key.
func (g *Gateway) GetDay(ctx context.Context, day string) (models.DayRecord, error) {
	if g.db == nil {
		return models.DayRecord{}, ErrUnavailable
	}
	row := g.db.QueryRowContext(ctx, `SELECT records FROM days WHERE day = ?`, day)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DayRecord{}, ErrNotFound
		}
		return models.DayRecord{}, g.fail("get day", err)
	}
	rec := models.DayRecord{Day: day}
	if err := json.Unmarshal(raw, &rec.Records); err != nil {
		return models.DayRecord{}, g.fail("get day", err)
	}
	return rec, nil
}

// GetLatestTask returns the last task of a day without removing it. A day
// with an empty task list counts as not found.
func (g *Gateway) GetLatestTask(ctx context.Context, day string) (models.TaskEntry, error) {
	rec, err := g.GetDay(ctx, day)
	if err != nil {
		return models.TaskEntry{}, err
	}
	if len(rec.Records) == 0 {
		return models.TaskEntry{}, ErrNotFound
	}
	return rec.Records[len(rec.Records)-1], nil
}

// Create inserts a new day record. A day that already exists is a
// conflict; nothing is merged or overwritten.
func (g *Gateway) Create(ctx context.Context, day string, records []models.TaskEntry) error {
	if g.db == nil {
		return ErrUnavailable
	}
	if _, err := g.GetDay(ctx, day); err == nil {
		return ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return g.fail("create", err)
	}
	if _, err := g.db.ExecContext(ctx, `INSERT INTO days(day, records) VALUES(?, ?)`, day, raw); err != nil {
		return g.fail("create", err)
	}
	return nil
}

// Update replaces the whole task list of an existing day.
func (g *Gateway) Update(ctx context.Context, day string, records []models.TaskEntry) error {
	if g.db == nil {
		return ErrUnavailable
	}
	if _, err := g.GetDay(ctx, day); err != nil {
		return err
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return g.fail("update", err)
	}
	if _, err := g.db.ExecContext(ctx, `UPDATE days SET records = ? WHERE day = ?`, raw, day); err != nil {
		return g.fail("update", err)
	}
	return nil
}

// DeleteDay removes a day record and everything in it.
func (g *Gateway) DeleteDay(ctx context.Context, day string) error {
	if g.db == nil {
		return ErrUnavailable
	}
	res, err := g.db.ExecContext(ctx, `DELETE FROM days WHERE day = ?`, day)
	if err != nil {
		return g.fail("delete day", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes the first task whose id equals taskID from the day.
// Ids are locally unique, so first match is the match. When nothing
// matches the stored list is left untouched and ErrNotChanged is
// returned instead of writing the same list back.
func (g *Gateway) DeleteTask(ctx context.Context, day string, taskID int) error {
	rec, err := g.GetDay(ctx, day)
	if err != nil {
		return err
	}
	filtered := make([]models.TaskEntry, 0, len(rec.Records))
	removed := false
	for _, task := range rec.Records {
		if !removed && task.ID == taskID {
			removed = true
			continue
		}
		filtered = append(filtered, task)
	}
	if !removed {
		return ErrNotChanged
	}
	return g.Update(ctx, day, filtered)
}

// GetAPIKey fetches the stored key record for a subject type.
func (g *Gateway) GetAPIKey(ctx context.Context, subject string) (models.APIKeyRecord, error) {
	if g.db == nil {
		return models.APIKeyRecord{}, ErrUnavailable
	}
	row := g.db.QueryRowContext(ctx, `SELECT key FROM api_keys WHERE type = ?`, subject)
	rec := models.APIKeyRecord{Type: subject}
	if err := row.Scan(&rec.Key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.APIKeyRecord{}, ErrNotFound
		}
		return models.APIKeyRecord{}, g.fail("get api key", err)
	}
	return rec, nil
}

// PutAPIKey stores or replaces the key for a subject type.
func (g *Gateway) PutAPIKey(ctx context.Context, subject, key string) error {
	if g.db == nil {
		return ErrUnavailable
	}
	_, err := g.db.ExecContext(ctx, `
		INSERT INTO api_keys(type, key) VALUES(?, ?)
		ON CONFLICT(type) DO UPDATE SET key = excluded.key
	`, subject, key)
	if err != nil {
		return g.fail("put api key", err)
	}
	return nil
}
