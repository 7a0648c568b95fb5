package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/codr1/Benchwise/internal/matchstate"
)

const sweepJobTimeout = 2 * time.Minute

// RegisterMatchSweepJob registers the periodic pass that completes
// in-progress matches whose start time is older than staleAfter.
func RegisterMatchSweepJob(stateService *matchstate.Service, cronExpr string, staleAfter time.Duration) error {
	if stateService == nil {
		return fmt.Errorf("match sweep job requires state service")
	}

	jobName := "match_sweep"
	jobLogger := log.With().
		Str("component", "match_sweep_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepJobTimeout)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		staleBefore := time.Now().UTC().Add(-staleAfter)
		finalized, err := stateService.FinalizeStaleMatches(ctx, staleBefore)
		if err != nil {
			jobLogger.Error().Err(err).Msg("Match sweep failed")
			return
		}
		if finalized > 0 {
			jobLogger.Info().Int("finalized", finalized).Msg("Stale matches completed")
		}
	}, gocron.WithSingletonMode(gocron.LimitModeWait))
	if err != nil {
		return fmt.Errorf("add match sweep job: %w", err)
	}

	jobLogger.Info().Msg("Match sweep job registered")
	return nil
}
