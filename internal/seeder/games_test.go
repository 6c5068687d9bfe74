package seeder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pong-seeder/internal/db"
	seederrors "pong-seeder/internal/errors"
)

func TestMatchSeederInvariants(t *testing.T) {
	ctx := context.Background()
	appCtx := setupApp(t)
	seedUsers(t, appCtx.DB, 4)

	require.NoError(t, NewMatchSeeder(appCtx).Run(ctx, 25))

	var games []db.Game
	require.NoError(t, appCtx.DB.Find(&games).Error)
	require.Len(t, games, 25)

	for _, g := range games {
		assert.NotEqual(t, g.Player1ID, g.Player2ID)
		assert.False(t, g.IsTournament)
		assert.Nil(t, g.TournamentID)

		// exactly one win/lose split, or both draw
		switch g.Player1Result {
		case db.ResultWin:
			assert.Equal(t, db.ResultLose, g.Player2Result)
		case db.ResultLose:
			assert.Equal(t, db.ResultWin, g.Player2Result)
		case db.ResultDraw:
			assert.Equal(t, db.ResultDraw, g.Player2Result)
		default:
			t.Fatalf("unexpected result %q", g.Player1Result)
		}

		// winner set iff scores differ
		if g.Player1Score == g.Player2Score {
			assert.Nil(t, g.WinnerID)
			assert.Equal(t, db.GeneralDraw, g.GeneralResult)
		} else {
			require.NotNil(t, g.WinnerID)
			if g.Player1Score > g.Player2Score {
				assert.Equal(t, g.Player1ID, *g.WinnerID)
			} else {
				assert.Equal(t, g.Player2ID, *g.WinnerID)
			}
		}

		// goals mirror scores across the two players
		assert.Equal(t, g.Player1Score, g.Player1GoalsInFavor)
		assert.Equal(t, g.Player2Score, g.Player1GoalsAgainst)
		assert.Equal(t, g.Player2Score, g.Player2GoalsInFavor)
		assert.Equal(t, g.Player1Score, g.Player2GoalsAgainst)

		assert.Contains(t, casualGameModes, g.GameMode)
		assert.Contains(t, g.ConfigJSON, "difficulty")
	}
}

// Every game contributes exactly two participations, so the summed
// total_games across all stats rows is twice the game count.
func TestMatchSeederStatsConsistency(t *testing.T) {
	ctx := context.Background()
	appCtx := setupApp(t)
	seedUsers(t, appCtx.DB, 4)

	require.NoError(t, NewMatchSeeder(appCtx).Run(ctx, 10))

	var allStats []db.UserStats
	require.NoError(t, appCtx.DB.Find(&allStats).Error)

	totalGames := 0
	for _, s := range allStats {
		totalGames += s.TotalGames
		assert.Equal(t, s.TotalGames, s.Wins+s.Losses+s.Draws)
		if s.TotalGames > 0 {
			assert.InDelta(t, float64(s.Wins)/float64(s.TotalGames), s.WinRate, 1e-9)
			assert.InDelta(t, float64(s.TotalGoalsScored)/float64(s.TotalGames), s.GoalsPerGame, 1e-9)
			assert.InDelta(t, float64(s.TotalHits)/float64(s.TotalGames), s.HitsPerGame, 1e-9)
		}
	}
	assert.Equal(t, 20, totalGames)
}

func TestMatchSeederInsufficientUsers(t *testing.T) {
	ctx := context.Background()
	appCtx := setupApp(t)
	seedUsers(t, appCtx.DB, 1)

	err := NewMatchSeeder(appCtx).Run(ctx, 5)
	require.Error(t, err)
	assert.True(t, seederrors.IsPrecondition(err))
	assert.Equal(t, int64(0), countRows(t, appCtx.DB, &db.Game{}))
}
