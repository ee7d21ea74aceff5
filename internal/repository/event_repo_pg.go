package repository

import (
	"context"

	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository archives consumed booking events.
type EventRepository interface {
	EnsureSchema(ctx context.Context) error
	Append(ctx context.Context, event kafka.BookingEvent) error
}

// execer is the part of *pgxpool.Pool the repository runs statements on.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PGEventRepository struct {
	db execer
}

func NewEventRepository(db *pgxpool.Pool) EventRepository {
	return &PGEventRepository{db: db}
}

const createEventsTable = `
        CREATE TABLE IF NOT EXISTS booking_events (
            id              BIGSERIAL PRIMARY KEY,
            record_id       TEXT,
            type            TEXT NOT NULL,
            passenger_id    TEXT NOT NULL,
            passenger_name  TEXT NOT NULL DEFAULT '',
            email           TEXT NOT NULL DEFAULT '',
            flight_number   TEXT NOT NULL DEFAULT '',
            route           TEXT NOT NULL DEFAULT '',
            available_seats INT NOT NULL,
            occurred_at     TIMESTAMPTZ NOT NULL,
            archived_at     TIMESTAMPTZ NOT NULL DEFAULT now()
        )`

const createRecordIDIndex = `
        CREATE UNIQUE INDEX IF NOT EXISTS booking_events_record_id_key
            ON booking_events (record_id)`

const insertEvent = `INSERT INTO booking_events
		(record_id, type, passenger_id, passenger_name, email, flight_number, route, available_seats, occurred_at)
		VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (record_id) DO NOTHING`

func (r *PGEventRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range []string{createEventsTable, createRecordIDIndex} {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Append stores the event once per record_id; a redelivered event is a no-op.
// Events without a record_id are always inserted.
func (r *PGEventRepository) Append(ctx context.Context, event kafka.BookingEvent) error {
	_, err := r.db.Exec(ctx, insertEvent,
		event.RecordID, event.Type, event.PassengerID, event.PassengerName, event.Email,
		event.FlightNumber, event.Route, event.AvailableSeats, event.OccurredAt)
	return err
}

var _ EventRepository = (*PGEventRepository)(nil)
