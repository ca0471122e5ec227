package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campusparking/lotfinder/internal/models"

	_ "github.com/lib/pq"
)

const listActiveLots = `SELECT id, name, lat, lng, capacity, available, hourly_rate
FROM parking_lots
WHERE active
ORDER BY id`

// PostgresSource reads lots from the parking_lots table
type PostgresSource struct {
	db *sql.DB
}

// OpenPostgres opens a pooled connection for dsn
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}

// NewPostgresSource creates a source over an open database
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// List returns active lots. NULL coordinates leave Location unset.
func (s *PostgresSource) List(ctx context.Context) ([]models.Facility, error) {
	rows, err := s.db.QueryContext(ctx, listActiveLots)
	if err != nil {
		return nil, fmt.Errorf("querying parking lots: %w", err)
	}
	defer rows.Close()

	var facilities []models.Facility
	for rows.Next() {
		var (
			f        models.Facility
			lat, lng sql.NullFloat64
		)
		if err := rows.Scan(&f.ID, &f.Name, &lat, &lng, &f.Capacity, &f.Available, &f.HourlyRate); err != nil {
			return nil, fmt.Errorf("scanning parking lot: %w", err)
		}
		f.Active = true
		if lat.Valid && lng.Valid {
			f.Location = &models.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading parking lots: %w", err)
	}

	return facilities, nil
}
