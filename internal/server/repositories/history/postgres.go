// Package history provides the PostgreSQL-backed repository for per-user
// weather search history.
package history

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/weatherhub/internal/dbx"
	"github.com/dmitrijs2005/weatherhub/internal/server/models"
)

// PostgresRepository implements history storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends a history row for the given user. The timestamp is assigned
// by the database.
func (r *PostgresRepository) Create(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error) {

	query :=
		`INSERT INTO search_history (user_id, location, weather_data)
		 VALUES ($1, $2, $3)
		 RETURNING id, search_timestamp
		 `

	err := r.db.QueryRowContext(ctx, query,
		record.UserID, record.Location, []byte(record.WeatherData)).
		Scan(&record.ID, &record.SearchTimestamp)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

// ListByUser returns all history rows of one user, newest first. Rows are
// never shared across users; the caller supplies a verified user id.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.HistoryRecord, error) {
	query :=
		`SELECT id, user_id, location, weather_data, search_timestamp FROM search_history
		 WHERE user_id = $1
		 ORDER BY search_timestamp DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.HistoryRecord
	for rows.Next() {
		var item models.HistoryRecord
		var data []byte
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Location, &data, &item.SearchTimestamp,
		); err != nil {
			return nil, err
		}
		item.WeatherData = data
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
