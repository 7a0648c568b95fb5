// internal/api/players/handlers.go
package players

import (
	"database/sql"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Benchwise/internal/api/apiutil"
	appdb "github.com/codr1/Benchwise/internal/db"
)

var (
	queries     *appdb.Queries
	queriesOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		log.Warn().Msg("players.InitHandlers called with nil database")
		return
	}
	queriesOnce.Do(func() {
		queries = database.Queries
	})
}

type createPlayerRequest struct {
	TeamID       int64  `json:"teamId"`
	Name         string `json:"name"`
	JerseyNumber *int64 `json:"jerseyNumber,omitempty"`
}

// GET /api/v1/players?team_id=N
func HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.TeamIDFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	players, err := queries.ListTeamPlayers(r.Context(), teamID)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to list players")
		http.Error(w, "Failed to list players", http.StatusInternalServerError)
		return
	}
	if players == nil {
		players = []appdb.Player{}
	}

	apiutil.WriteJSON(w, http.StatusOK, players)
}

// POST /api/v1/players
func HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req createPlayerRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.TeamID <= 0 || req.Name == "" {
		http.Error(w, "teamId and name are required", http.StatusBadRequest)
		return
	}

	params := appdb.CreatePlayerParams{
		TeamID: req.TeamID,
		Name:   req.Name,
	}
	if req.JerseyNumber != nil {
		params.JerseyNumber = sql.NullInt64{Int64: *req.JerseyNumber, Valid: true}
	}

	player, err := queries.CreatePlayer(r.Context(), params)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", req.TeamID).Msg("Failed to create player")
		http.Error(w, "Failed to create player", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("player_id", player.ID).Int64("team_id", player.TeamID).Msg("Created player")
	apiutil.WriteJSON(w, http.StatusCreated, player)
}
