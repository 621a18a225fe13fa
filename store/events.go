// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/sportscal/db"
	"github.com/danielhkuo/sportscal/models"
)

// Events are left-joined so rows with a dangling sport or venue still list,
// under placeholder labels.
const eventSelect = `
		SELECT e.event_id, e.sport_id, e.venue_id, e.event_date, e.event_time,
		       COALESCE(e.description, ''),
		       COALESCE(s.name, '` + models.UnknownSportLabel + `'),
		       COALESCE(v.name, '` + models.UnknownVenueLabel + `')
		FROM event e
		LEFT JOIN sport s ON s.sport_id = e.sport_id
		LEFT JOIN venue v ON v.venue_id = e.venue_id`

const eventOrder = "e.event_date ASC, e.event_time ASC, e.event_id ASC"

// Columns matched by keyword search
var searchColumns = []string{"s.name", "v.name", "e.event_date", "e.event_time", "e.description"}

// EventFilter narrows ListEvents. Blank fields are ignored.
type EventFilter struct {
	VenueName       string
	ParticipantName string
}

// ListEvents returns events ordered by date then time, optionally filtered by
// venue name and participant name substrings.
func (s *Store) ListEvents(ctx context.Context, f EventFilter) ([]models.Event, error) {
	q := newSelect(eventSelect).order(eventOrder)

	if v := strings.TrimSpace(f.VenueName); v != "" {
		q.whereLike("v.name", v)
	}
	if p := strings.TrimSpace(f.ParticipantName); p != "" {
		q.where(`EXISTS (
			SELECT 1 FROM event_participant p
			WHERE p.event_id = e.event_id AND `+likeClause("p.participant_name")+`
		)`, containsPattern(p))
	}

	return s.queryEvents(ctx, q)
}

// SearchEvents matches query as a substring of sport name, venue name, date,
// time or description. A blank query returns no events without touching the
// database.
func (s *Store) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Event{}, nil
	}

	q := newSelect(eventSelect).
		whereAnyLike(searchColumns, query).
		order(eventOrder)

	return s.queryEvents(ctx, q)
}

func (s *Store) queryEvents(ctx context.Context, q *selectQuery) ([]models.Event, error) {
	query, args := q.build(s.dialect)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner, e *models.Event) error {
	err := row.Scan(
		&e.ID, &e.SportID, &e.VenueID, &e.EventDate, &e.EventTime,
		&e.Description, &e.SportName, &e.VenueName,
	)
	if err != nil {
		return err
	}
	e.Decorate()
	return nil
}

// GetEvent returns one event with its participant names.
// Returns ErrEventNotFound when no event has the id.
func (s *Store) GetEvent(ctx context.Context, id int64) (models.EventDetail, error) {
	var detail models.EventDetail

	query, args := newSelect(eventSelect).where("e.event_id = ?", id).build(s.dialect)
	err := scanEvent(s.db.QueryRowContext(ctx, query, args...), &detail.Event)
	if errors.Is(err, sql.ErrNoRows) {
		return detail, ErrEventNotFound
	}
	if err != nil {
		return detail, fmt.Errorf("failed to query event: %w", err)
	}

	participants, err := s.listParticipants(ctx, id)
	if err != nil {
		return detail, err
	}
	detail.Participants = participants

	return detail, nil
}

func (s *Store) listParticipants(ctx context.Context, eventID int64) ([]string, error) {
	query := `
		SELECT participant_name
		FROM event_participant
		WHERE event_id = ?`
	if s.dialect == db.SQLite {
		query += "\n\t\tORDER BY rowid"
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query), eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return names, nil
}

// CreateEvent inserts the event and its participant rows in one transaction
// and returns the new event id. Nothing is kept if any insert fails.
func (s *Store) CreateEvent(ctx context.Context, in models.NewEvent) (int64, error) {
	var eventID int64

	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		description := sql.NullString{String: in.Description, Valid: in.Description != ""}

		err := tx.QueryRowContext(ctx, s.dialect.Rebind(`
			INSERT INTO event (sport_id, venue_id, event_date, event_time, description)
			VALUES (?, ?, ?, ?, ?)
			RETURNING event_id
		`), in.SportID, in.VenueID, in.EventDate, in.EventTime, description).Scan(&eventID)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}

		if len(in.Participants) == 0 {
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, s.dialect.Rebind(`
			INSERT INTO event_participant (event_id, participant_name)
			VALUES (?, ?)
		`))
		if err != nil {
			return fmt.Errorf("failed to prepare participant insert: %w", err)
		}
		defer stmt.Close()

		for _, name := range in.Participants {
			if _, err := stmt.ExecContext(ctx, eventID, name); err != nil {
				return fmt.Errorf("failed to insert participant %q: %w", name, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return eventID, nil
}
