// internal/api/stats/handlers.go
package stats

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Benchwise/internal/api/apiutil"
	appdb "github.com/codr1/Benchwise/internal/db"
	teamstats "github.com/codr1/Benchwise/internal/stats"
)

var (
	queries     *appdb.Queries
	queriesOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		log.Warn().Msg("stats.InitHandlers called with nil database")
		return
	}
	queriesOnce.Do(func() {
		queries = database.Queries
	})
}

// GET /api/v1/stats/attendance?team_id=N
func HandleAttendance(w http.ResponseWriter, r *http.Request) {
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

	summary, err := teamstats.CalculateAttendance(r.Context(), queries, teamID)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to calculate attendance")
		http.Error(w, "Failed to calculate attendance", http.StatusInternalServerError)
		return
	}
	if summary == nil {
		summary = []teamstats.PlayerAttendance{}
	}

	apiutil.WriteJSON(w, http.StatusOK, summary)
}

// GET /api/v1/stats/players?team_id=N
func HandlePlayerTotals(w http.ResponseWriter, r *http.Request) {
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

	totals, err := teamstats.CalculatePlayerTotals(r.Context(), queries, teamID)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to calculate player totals")
		http.Error(w, "Failed to calculate player totals", http.StatusInternalServerError)
		return
	}
	if totals.Players == nil {
		totals.Players = []teamstats.PlayerTotals{}
	}

	apiutil.WriteJSON(w, http.StatusOK, totals)
}
