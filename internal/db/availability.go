package db

import (
	"context"
	"fmt"
)

const (
	AvailabilityYes     = "yes"
	AvailabilityNo      = "no"
	AvailabilityMaybe   = "maybe"
	AvailabilityUnknown = "unknown"
)

type UpsertMatchAvailabilityParams struct {
	MatchID  int64
	PlayerID int64
	Status   string
}

func (q *Queries) UpsertMatchAvailability(ctx context.Context, arg UpsertMatchAvailabilityParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO match_availability (match_id, player_id, status)
		 VALUES (?, ?, ?)
		 ON CONFLICT (match_id, player_id)
		 DO UPDATE SET status = excluded.status, updated_at = CURRENT_TIMESTAMP`,
		arg.MatchID, arg.PlayerID, arg.Status,
	)
	if err != nil {
		return fmt.Errorf("upsert match availability: %w", err)
	}
	return nil
}

type MatchAvailabilityRow struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	Status     string `json:"status"`
}

func (q *Queries) ListMatchAvailability(ctx context.Context, matchID int64) ([]MatchAvailabilityRow, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT p.id, p.name, COALESCE(ma.status, ?) AS status
		 FROM players p
		 JOIN matches m ON m.team_id = p.team_id
		 LEFT JOIN match_availability ma ON ma.match_id = m.id AND ma.player_id = p.id
		 WHERE m.id = ?
		 ORDER BY p.name`,
		AvailabilityUnknown, matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("list match availability: %w", err)
	}
	defer rows.Close()

	var result []MatchAvailabilityRow
	for rows.Next() {
		var row MatchAvailabilityRow
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &row.Status); err != nil {
			return nil, fmt.Errorf("scan match availability: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

type TeamAvailabilityRow struct {
	PlayerID   int64
	PlayerName string
	MatchID    int64
	Status     string
}

// ListTeamAvailability returns one row per player per non-cancelled match,
// with unset availability reported as unknown. Attendance aggregation happens
// in the stats package.
func (q *Queries) ListTeamAvailability(ctx context.Context, teamID int64) ([]TeamAvailabilityRow, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT p.id, p.name, m.id, COALESCE(ma.status, ?) AS status
		 FROM players p
		 JOIN matches m ON m.team_id = p.team_id
		 LEFT JOIN match_availability ma ON ma.match_id = m.id AND ma.player_id = p.id
		 WHERE p.team_id = ? AND m.status != ?
		 ORDER BY p.name, m.starts_at`,
		AvailabilityUnknown, teamID, MatchStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("list team availability: %w", err)
	}
	defer rows.Close()

	var result []TeamAvailabilityRow
	for rows.Next() {
		var row TeamAvailabilityRow
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &row.MatchID, &row.Status); err != nil {
			return nil, fmt.Errorf("scan team availability: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
