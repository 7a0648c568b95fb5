package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Player struct {
	ID           int64         `json:"id"`
	TeamID       int64         `json:"teamId"`
	Name         string        `json:"name"`
	JerseyNumber sql.NullInt64 `json:"jerseyNumber"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type CreatePlayerParams struct {
	TeamID       int64
	Name         string
	JerseyNumber sql.NullInt64
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO players (team_id, name, jersey_number) VALUES (?, ?, ?)
		 RETURNING id, team_id, name, jersey_number, status, created_at`,
		arg.TeamID, arg.Name, arg.JerseyNumber,
	)
	var player Player
	if err := scanPlayer(row, &player); err != nil {
		return Player{}, fmt.Errorf("create player: %w", err)
	}
	return player, nil
}

func (q *Queries) GetPlayer(ctx context.Context, id int64) (Player, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, team_id, name, jersey_number, status, created_at
		 FROM players WHERE id = ?`,
		id,
	)
	var player Player
	if err := scanPlayer(row, &player); err != nil {
		return Player{}, err
	}
	return player, nil
}

func (q *Queries) ListTeamPlayers(ctx context.Context, teamID int64) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, team_id, name, jersey_number, status, created_at
		 FROM players WHERE team_id = ? ORDER BY name`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var player Player
		if err := rows.Scan(&player.ID, &player.TeamID, &player.Name, &player.JerseyNumber, &player.Status, &player.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func scanPlayer(row *sql.Row, player *Player) error {
	return row.Scan(&player.ID, &player.TeamID, &player.Name, &player.JerseyNumber, &player.Status, &player.CreatedAt)
}
