package db

import (
	"context"
	"fmt"
	"time"
)

type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (q *Queries) CreateTeam(ctx context.Context, name string) (Team, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO teams (name) VALUES (?)
		 RETURNING id, name, created_at`,
		name,
	)
	var team Team
	if err := row.Scan(&team.ID, &team.Name, &team.CreatedAt); err != nil {
		return Team{}, fmt.Errorf("create team: %w", err)
	}
	return team, nil
}

func (q *Queries) GetTeam(ctx context.Context, id int64) (Team, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM teams WHERE id = ?`,
		id,
	)
	var team Team
	if err := row.Scan(&team.ID, &team.Name, &team.CreatedAt); err != nil {
		return Team{}, err
	}
	return team, nil
}

func (q *Queries) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM teams ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var team Team
		if err := rows.Scan(&team.ID, &team.Name, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}
