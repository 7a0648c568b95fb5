package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	benchdb "github.com/codr1/Benchwise/internal/db"
)

// NewTestDB creates a temporary SQLite database with migrations applied.
func NewTestDB(t *testing.T) *benchdb.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := benchdb.New(dbPath)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// SeedTeam inserts a team with six players and one scheduled match, returning
// the team ID, match ID, and player IDs in creation order.
func SeedTeam(t *testing.T, database *benchdb.DB) (teamID, matchID int64, playerIDs []int64) {
	t.Helper()
	ctx := context.Background()

	team, err := database.Queries.CreateTeam(ctx, "Test Team")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	names := []string{"Alice", "Bob", "Carol", "Dan", "Erin", "Frank"}
	for i, name := range names {
		player, err := database.Queries.CreatePlayer(ctx, benchdb.CreatePlayerParams{
			TeamID:       team.ID,
			Name:         name,
			JerseyNumber: sql.NullInt64{Int64: int64(i + 1), Valid: true},
		})
		if err != nil {
			t.Fatalf("create player %s: %v", name, err)
		}
		playerIDs = append(playerIDs, player.ID)
	}

	match, err := database.Queries.CreateMatch(ctx, benchdb.CreateMatchParams{
		TeamID:   team.ID,
		Opponent: "Rival FC",
		StartsAt: time.Now().Add(24 * time.Hour).UTC(),
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	return team.ID, match.ID, playerIDs
}
