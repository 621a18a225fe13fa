// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	_, err := db.ExecContext(ctx, dialect.Schema())
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Schema returns the built-in table definitions for the dialect
func (d Dialect) Schema() string {
	if d == Postgres {
		return postgresSchema
	}
	return sqliteSchema
}

const sqliteSchema = `
-- Sports
CREATE TABLE IF NOT EXISTS sport (
    sport_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

-- Venues
CREATE TABLE IF NOT EXISTS venue (
    venue_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    city TEXT,
    address TEXT
);

-- Teams
CREATE TABLE IF NOT EXISTS team (
    team_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

-- Events
CREATE TABLE IF NOT EXISTS event (
    event_id INTEGER PRIMARY KEY AUTOINCREMENT,
    sport_id INTEGER NOT NULL REFERENCES sport(sport_id),
    venue_id INTEGER NOT NULL REFERENCES venue(venue_id),
    event_date TEXT NOT NULL,
    event_time TEXT NOT NULL,
    description TEXT
);

CREATE INDEX IF NOT EXISTS idx_event_date_time ON event(event_date, event_time);

-- Participants
CREATE TABLE IF NOT EXISTS event_participant (
    event_id INTEGER NOT NULL REFERENCES event(event_id) ON DELETE CASCADE,
    participant_name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_event_participant_event_id ON event_participant(event_id);
`

const postgresSchema = `
-- Sports
CREATE TABLE IF NOT EXISTS sport (
    sport_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Venues
CREATE TABLE IF NOT EXISTS venue (
    venue_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    city TEXT,
    address TEXT
);

-- Teams
CREATE TABLE IF NOT EXISTS team (
    team_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL
);

-- Events
CREATE TABLE IF NOT EXISTS event (
    event_id SERIAL PRIMARY KEY,
    sport_id INTEGER NOT NULL REFERENCES sport(sport_id),
    venue_id INTEGER NOT NULL REFERENCES venue(venue_id),
    event_date TEXT NOT NULL,
    event_time TEXT NOT NULL,
    description TEXT
);

CREATE INDEX IF NOT EXISTS idx_event_date_time ON event(event_date, event_time);

-- Participants
CREATE TABLE IF NOT EXISTS event_participant (
    event_id INTEGER NOT NULL REFERENCES event(event_id) ON DELETE CASCADE,
    participant_name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_event_participant_event_id ON event_participant(event_id);
`
