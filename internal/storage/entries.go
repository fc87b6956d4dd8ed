// ABOUTME: Entry storage: upsert-by-key writes and range-scoped reads.
// ABOUTME: Implements the analysis.EntryStore contract.
package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/scandolo/life-tracker/internal/models"
)

// PutEntry writes an entry, overwriting any existing value for the same
// (user, metric, date) key. Writes are idempotent by key.
func (s *Store) PutEntry(e *models.Entry) error {
	query := `
		INSERT INTO entries (user_id, metric_id, entry_date, value, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, metric_id, entry_date)
		DO UPDATE SET value = excluded.value, note = excluded.note, updated_at = excluded.updated_at
	`
	_, err := s.db.Exec(query,
		e.UserID,
		e.MetricID.String(),
		models.Day(e.Date).Format(time.DateOnly),
		e.Value,
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return storeErr("put entry", err)
	}
	return nil
}

// GetEntries returns the metric's entries within the closed date range,
// ordered ascending by date.
func (s *Store) GetEntries(userID string, metricID uuid.UUID, rng models.DateRange) ([]models.Entry, error) {
	query := `
		SELECT user_id, metric_id, entry_date, value, note, created_at, updated_at
		FROM entries
		WHERE user_id = ? AND metric_id = ? AND entry_date BETWEEN ? AND ?
		ORDER BY entry_date ASC
	`
	rows, err := s.db.Query(query,
		userID,
		metricID.String(),
		rng.Start.Format(time.DateOnly),
		rng.End.Format(time.DateOnly),
	)
	if err != nil {
		return nil, storeErr("get entries", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, storeErr("get entries", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("get entries", err)
	}
	return entries, nil
}

// CountEntries returns how many entries exist for a metric.
func (s *Store) CountEntries(userID string, metricID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM entries WHERE user_id = ? AND metric_id = ?",
		userID, metricID.String()).Scan(&n)
	if err != nil {
		return 0, storeErr("count entries", err)
	}
	return n, nil
}

func scanEntry(row scanner) (models.Entry, error) {
	var e models.Entry
	var metricID, entryDate, createdAt, updatedAt string
	var note *string

	err := row.Scan(&e.UserID, &metricID, &entryDate, &e.Value, &note, &createdAt, &updatedAt)
	if err != nil {
		return models.Entry{}, err
	}

	e.MetricID, err = uuid.Parse(metricID)
	if err != nil {
		return models.Entry{}, err
	}
	e.Date, err = time.Parse(time.DateOnly, entryDate)
	if err != nil {
		return models.Entry{}, err
	}
	e.Date = models.Day(e.Date)
	e.Note = note
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return e, nil
}
