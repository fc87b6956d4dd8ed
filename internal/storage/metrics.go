// ABOUTME: Metric definition CRUD for SQLite storage.
// ABOUTME: Implements the catalog.MetricStore contract, scoped per user.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scandolo/life-tracker/internal/models"
)

const metricColumns = `id, user_id, name, kind, min_value, max_value,
	scale_min, scale_max, category, description, example, example_low,
	example_high, created_at`

// SaveMetric stores a new metric definition.
func (s *Store) SaveMetric(m *models.Metric) error {
	query := `
		INSERT INTO metrics (` + metricColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		m.ID.String(),
		m.UserID,
		m.Name,
		string(m.Kind),
		m.Domain.Min,
		m.Domain.Max,
		m.Domain.ScaleMin,
		m.Domain.ScaleMax,
		m.Category,
		m.Description,
		m.Example,
		m.ExampleLow,
		m.ExampleHigh,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return storeErr("save metric", err)
	}
	return nil
}

// GetMetric retrieves a metric by id for the given user.
func (s *Store) GetMetric(userID string, id uuid.UUID) (*models.Metric, error) {
	query := `SELECT ` + metricColumns + ` FROM metrics WHERE user_id = ? AND id = ?`
	m, err := scanMetric(s.db.QueryRow(query, userID, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownMetric, id)
		}
		return nil, storeErr("get metric", err)
	}
	return m, nil
}

// GetMetricByName retrieves a metric by its unique-per-user name.
func (s *Store) GetMetricByName(userID, name string) (*models.Metric, error) {
	query := `SELECT ` + metricColumns + ` FROM metrics WHERE user_id = ? AND name = ?`
	m, err := scanMetric(s.db.QueryRow(query, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownMetric, name)
		}
		return nil, storeErr("get metric by name", err)
	}
	return m, nil
}

// ListMetrics returns all of the user's metrics, grouped by category.
func (s *Store) ListMetrics(userID string) ([]*models.Metric, error) {
	query := `SELECT ` + metricColumns + ` FROM metrics WHERE user_id = ? ORDER BY category, name`
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, storeErr("list metrics", err)
	}
	defer rows.Close()

	var metrics []*models.Metric
	for rows.Next() {
		m, err := scanMetric(rows)
		if err != nil {
			return nil, storeErr("list metrics", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list metrics", err)
	}
	return metrics, nil
}

// UpdateMetric rewrites a metric's domain and descriptive fields.
// The kind column is deliberately not touched: changing a metric's kind
// would invalidate the semantics of its historical entries.
func (s *Store) UpdateMetric(m *models.Metric) error {
	query := `
		UPDATE metrics
		SET min_value = ?, max_value = ?, scale_min = ?, scale_max = ?,
			category = ?, description = ?, example = ?, example_low = ?, example_high = ?
		WHERE user_id = ? AND id = ?
	`
	result, err := s.db.Exec(query,
		m.Domain.Min,
		m.Domain.Max,
		m.Domain.ScaleMin,
		m.Domain.ScaleMax,
		m.Category,
		m.Description,
		m.Example,
		m.ExampleLow,
		m.ExampleHigh,
		m.UserID,
		m.ID.String(),
	)
	if err != nil {
		return storeErr("update metric", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("update metric", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", models.ErrUnknownMetric, m.ID)
	}
	return nil
}

// DeleteMetric removes a metric. Its entries go with it via the
// foreign-key cascade, so later series requests see nothing stale.
func (s *Store) DeleteMetric(userID string, id uuid.UUID) error {
	result, err := s.db.Exec(
		"DELETE FROM metrics WHERE user_id = ? AND id = ?", userID, id.String())
	if err != nil {
		return storeErr("delete metric", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("delete metric", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", models.ErrUnknownMetric, id)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMetric(row scanner) (*models.Metric, error) {
	var m models.Metric
	var idStr, kind, createdAt string
	var minVal, maxVal sql.NullFloat64
	var example, exampleLow, exampleHigh sql.NullString

	err := row.Scan(&idStr, &m.UserID, &m.Name, &kind, &minVal, &maxVal,
		&m.Domain.ScaleMin, &m.Domain.ScaleMax, &m.Category, &m.Description,
		&example, &exampleLow, &exampleHigh, &createdAt)
	if err != nil {
		return nil, err
	}

	m.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid metric ID in database: %w", err)
	}
	m.Kind = models.MetricKind(kind)
	if minVal.Valid {
		m.Domain.Min = &minVal.Float64
	}
	if maxVal.Valid {
		m.Domain.Max = &maxVal.Float64
	}
	if example.Valid {
		m.Example = &example.String
	}
	if exampleLow.Valid {
		m.ExampleLow = &exampleLow.String
	}
	if exampleHigh.Valid {
		m.ExampleHigh = &exampleHigh.String
	}
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at timestamp: %w", err)
	}

	return &m, nil
}
