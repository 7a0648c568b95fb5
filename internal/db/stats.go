package db

import (
	"context"
	"database/sql"
	"fmt"
)

type AddPlayerMatchStatParams struct {
	MatchID       int64
	PlayerID      int64
	SecondsPlayed int64
	Goals         int64
	Substitutions int64
}

// AddPlayerMatchStat increments a player's stat line for a match, creating it
// on first use.
func (q *Queries) AddPlayerMatchStat(ctx context.Context, arg AddPlayerMatchStatParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO player_match_stats (match_id, player_id, seconds_played, goals, substitutions)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (match_id, player_id)
		 DO UPDATE SET
		     seconds_played = seconds_played + excluded.seconds_played,
		     goals = goals + excluded.goals,
		     substitutions = substitutions + excluded.substitutions`,
		arg.MatchID, arg.PlayerID, arg.SecondsPlayed, arg.Goals, arg.Substitutions,
	)
	if err != nil {
		return fmt.Errorf("add player match stat: %w", err)
	}
	return nil
}

type PlayerStatRow struct {
	PlayerID      int64  `json:"playerId"`
	PlayerName    string `json:"playerName"`
	MatchID       int64  `json:"matchId"`
	SecondsPlayed int64  `json:"secondsPlayed"`
	Goals         int64  `json:"goals"`
	Substitutions int64  `json:"substitutions"`
}

func (q *Queries) ListMatchPlayerStats(ctx context.Context, matchID int64) ([]PlayerStatRow, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT s.player_id, p.name, s.match_id, s.seconds_played, s.goals, s.substitutions
		 FROM player_match_stats s
		 JOIN players p ON p.id = s.player_id
		 WHERE s.match_id = ?
		 ORDER BY p.name`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("list match player stats: %w", err)
	}
	defer rows.Close()
	return collectPlayerStatRows(rows)
}

func (q *Queries) ListTeamPlayerStats(ctx context.Context, teamID int64) ([]PlayerStatRow, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT s.player_id, p.name, s.match_id, s.seconds_played, s.goals, s.substitutions
		 FROM player_match_stats s
		 JOIN players p ON p.id = s.player_id
		 WHERE p.team_id = ?
		 ORDER BY p.name, s.match_id`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list team player stats: %w", err)
	}
	defer rows.Close()
	return collectPlayerStatRows(rows)
}

func collectPlayerStatRows(rows *sql.Rows) ([]PlayerStatRow, error) {
	var result []PlayerStatRow
	for rows.Next() {
		var row PlayerStatRow
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &row.MatchID, &row.SecondsPlayed, &row.Goals, &row.Substitutions); err != nil {
			return nil, fmt.Errorf("scan player stat: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
