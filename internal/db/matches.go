package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	MatchStatusScheduled  = "scheduled"
	MatchStatusInProgress = "in_progress"
	MatchStatusCompleted  = "completed"
	MatchStatusCancelled  = "cancelled"
)

type Match struct {
	ID            int64          `json:"id"`
	TeamID        int64          `json:"teamId"`
	Opponent      string         `json:"opponent"`
	StartsAt      time.Time      `json:"startsAt"`
	Status        string         `json:"status"`
	TeamScore     int64          `json:"teamScore"`
	OpponentScore int64          `json:"opponentScore"`
	Notes         sql.NullString `json:"notes"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

const matchColumns = `id, team_id, opponent, starts_at, status, team_score, opponent_score, notes, created_at, updated_at`

type CreateMatchParams struct {
	TeamID   int64
	Opponent string
	StartsAt time.Time
	Notes    sql.NullString
}

func (q *Queries) CreateMatch(ctx context.Context, arg CreateMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO matches (team_id, opponent, starts_at, notes) VALUES (?, ?, ?, ?)
		 RETURNING `+matchColumns,
		arg.TeamID, arg.Opponent, arg.StartsAt, arg.Notes,
	)
	var match Match
	if err := scanMatch(row, &match); err != nil {
		return Match{}, fmt.Errorf("create match: %w", err)
	}
	return match, nil
}

func (q *Queries) GetMatch(ctx context.Context, id int64) (Match, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = ?`,
		id,
	)
	var match Match
	if err := scanMatch(row, &match); err != nil {
		return Match{}, err
	}
	return match, nil
}

func (q *Queries) ListTeamMatches(ctx context.Context, teamID int64) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE team_id = ? ORDER BY starts_at`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list team matches: %w", err)
	}
	defer rows.Close()
	return collectMatches(rows)
}

type UpdateMatchScoreParams struct {
	TeamScore     int64
	OpponentScore int64
	ID            int64
}

func (q *Queries) UpdateMatchScore(ctx context.Context, arg UpdateMatchScoreParams) (Match, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE matches
		 SET team_score = ?, opponent_score = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?
		 RETURNING `+matchColumns,
		arg.TeamScore, arg.OpponentScore, arg.ID,
	)
	var match Match
	if err := scanMatch(row, &match); err != nil {
		return Match{}, fmt.Errorf("update match score: %w", err)
	}
	return match, nil
}

type UpdateMatchStatusParams struct {
	Status string
	ID     int64
}

func (q *Queries) UpdateMatchStatus(ctx context.Context, arg UpdateMatchStatusParams) (Match, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE matches
		 SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?
		 RETURNING `+matchColumns,
		arg.Status, arg.ID,
	)
	var match Match
	if err := scanMatch(row, &match); err != nil {
		return Match{}, fmt.Errorf("update match status: %w", err)
	}
	return match, nil
}

// ListStaleInProgressMatches returns in-progress matches whose scheduled start
// is older than the given cutoff.
func (q *Queries) ListStaleInProgressMatches(ctx context.Context, staleBefore time.Time) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE status = ? AND starts_at < ?
		 ORDER BY starts_at`,
		MatchStatusInProgress, staleBefore,
	)
	if err != nil {
		return nil, fmt.Errorf("list stale matches: %w", err)
	}
	defer rows.Close()
	return collectMatches(rows)
}

func scanMatch(row *sql.Row, match *Match) error {
	return row.Scan(
		&match.ID, &match.TeamID, &match.Opponent, &match.StartsAt, &match.Status,
		&match.TeamScore, &match.OpponentScore, &match.Notes, &match.CreatedAt, &match.UpdatedAt,
	)
}

func collectMatches(rows *sql.Rows) ([]Match, error) {
	var matches []Match
	for rows.Next() {
		var match Match
		if err := rows.Scan(
			&match.ID, &match.TeamID, &match.Opponent, &match.StartsAt, &match.Status,
			&match.TeamScore, &match.OpponentScore, &match.Notes, &match.CreatedAt, &match.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}
