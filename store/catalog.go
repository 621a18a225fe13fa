// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/sportscal/models"
)

// ListSports returns every sport ordered by name
func (s *Store) ListSports(ctx context.Context) ([]models.Sport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sport_id, name
		FROM sport
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sports: %w", err)
	}
	defer rows.Close()

	sports := []models.Sport{}
	for rows.Next() {
		var sp models.Sport
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, fmt.Errorf("failed to scan sport: %w", err)
		}
		sports = append(sports, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sports: %w", err)
	}

	return sports, nil
}

// ListVenues returns every venue ordered by name
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT venue_id, name, COALESCE(city, ''), COALESCE(address, '')
		FROM venue
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	venues := []models.Venue{}
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Address); err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate venues: %w", err)
	}

	return venues, nil
}

// ListTeams returns every team ordered by name
func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT team_id, name
		FROM team
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var tm models.Team
		if err := rows.Scan(&tm.ID, &tm.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, tm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}
