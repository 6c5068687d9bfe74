package seeder

import (
	"context"

	"pong-seeder/internal/db"
	"pong-seeder/internal/repository"
)

// StatsAggregator folds per-match player samples into the per-user
// aggregate row. It never re-scans game history: every counter is
// additive and every derived rate is recomputed incrementally from
// the pre-update cumulative values plus the new sample.
type StatsAggregator struct {
	stats *repository.StatsRepository
}

// NewStatsAggregator creates an aggregator writing through the given
// stats repository.
func NewStatsAggregator(stats *repository.StatsRepository) *StatsAggregator {
	return &StatsAggregator{stats: stats}
}

// Record folds one player's sample into their stats row, lazily
// creating a zeroed row on the user's first game. The read-then-write
// runs inside the caller's transaction, so it is a single upsert as
// far as any other process can observe.
func (a *StatsAggregator) Record(ctx context.Context, userID uint64, sample MatchSample) error {
	stats, err := a.stats.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	fold(stats, sample)
	return a.stats.Save(ctx, stats)
}

// fold applies one sample to a stats row in place.
//
// The derived rates divide the pre-update cumulative value plus the
// new sample by (pre-update total_games + 1). When total_games is 0
// every formula collapses to the raw sample value, so no special case
// is needed.
func fold(stats *db.UserStats, s MatchSample) {
	preGames := stats.TotalGames
	preAvg := stats.AverageScore

	switch s.Result {
	case db.ResultWin:
		stats.Wins++
	case db.ResultLose:
		stats.Losses++
	case db.ResultDraw:
		stats.Draws++
	}

	stats.TotalHits += s.Hits
	stats.TotalGoalsScored += s.GoalsScored
	stats.TotalGoalsConceded += s.GoalsConceded
	stats.TotalPowerupsPicked += s.Powerups
	stats.TotalPowerdownsPicked += s.Powerdowns
	stats.TotalBallchangesPicked += s.BallChanges

	stats.BallUsage.Add(s.BallUsage)
	stats.SpecialItems.Add(s.SpecialItems)
	stats.WallElements.Add(s.WallElements)

	if s.Score > stats.HighestScore {
		stats.HighestScore = s.Score
	}

	stats.TotalGames = preGames + 1
	post := float64(preGames + 1)

	stats.WinRate = float64(stats.Wins) / post
	stats.AverageScore = (preAvg*float64(preGames) + float64(s.Score)) / post
	stats.GoalsPerGame = float64(stats.TotalGoalsScored) / post
	stats.HitsPerGame = float64(stats.TotalHits) / post
	stats.PowerupsPerGame = float64(stats.TotalPowerupsPicked) / post
}
