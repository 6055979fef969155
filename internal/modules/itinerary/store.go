// README: Itinerary store backed by PostgreSQL (append-only: create, get, list).
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"tripcast/internal/types"
)

// Store persists itineraries. Create assigns ID and CreatedAt.
type Store interface {
	Create(ctx context.Context, it *Itinerary) error
	// Get returns ErrNotFound when id does not exist.
	Get(ctx context.Context, id int64) (*Itinerary, error)
	// List returns every itinerary, newest first.
	List(ctx context.Context) ([]Itinerary, error)
}

// db is satisfied by *pgxpool.Pool and pgx.Tx.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGStore struct {
	db db
}

func NewStore(db db) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, it *Itinerary) error {
	weatherJSON, err := json.Marshal(it.Weather)
	if err != nil {
		return fmt.Errorf("itinerary.Store.Create: marshal weather: %w", err)
	}
	planJSON, err := json.Marshal(it.Plan)
	if err != nil {
		return fmt.Errorf("itinerary.Store.Create: marshal plan: %w", err)
	}

	err = s.db.QueryRow(ctx, `
		INSERT INTO itineraries (destination, date, weather_data, itinerary_data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		it.Destination,
		it.Date.Time(),
		weatherJSON,
		planJSON,
	).Scan(&it.ID, &it.CreatedAt)
	if err != nil {
		return fmt.Errorf("itinerary.Store.Create: %w", err)
	}
	return nil
}

func (s *PGStore) Get(ctx context.Context, id int64) (*Itinerary, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, destination, date, weather_data, itinerary_data, created_at
		FROM itineraries
		WHERE id = $1`, id,
	)
	it, err := scanItinerary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("itinerary.Store.Get: %w", err)
	}
	return &it, nil
}

func (s *PGStore) List(ctx context.Context) ([]Itinerary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, destination, date, weather_data, itinerary_data, created_at
		FROM itineraries
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("itinerary.Store.List: %w", err)
	}
	defer rows.Close()

	out := []Itinerary{}
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("itinerary.Store.List: scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("itinerary.Store.List: rows: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItinerary(s scanner) (Itinerary, error) {
	var (
		it          Itinerary
		date        pgtype.Date
		weatherJSON []byte
		planJSON    []byte
	)
	if err := s.Scan(&it.ID, &it.Destination, &date, &weatherJSON, &planJSON, &it.CreatedAt); err != nil {
		return Itinerary{}, err
	}
	it.Date = types.DateOf(date.Time)
	if err := json.Unmarshal(weatherJSON, &it.Weather); err != nil {
		return Itinerary{}, fmt.Errorf("decode weather_data: %w", err)
	}
	if err := json.Unmarshal(planJSON, &it.Plan); err != nil {
		return Itinerary{}, fmt.Errorf("decode itinerary_data: %w", err)
	}
	return it, nil
}
