package seeder

import (
	"math/rand"

	"pong-seeder/internal/db"
)

// Blockchain-explorer linkage carried on every game row. The testnet
// contract is shared by all simulated games.
const (
	smartContractLink = "https://testnet.snowtrace.io/address/0x7f053C63bF897AA9Dc1373158051F1fDbB4a5BC6/contract/43113/readContract?chainid=43113"
	contractAddress   = "0x7f053C63bF897AA9Dc1373158051F1fDbB4a5BC6"
)

// GameConfig is the small per-game configuration blob serialized into
// the games.config_json text column.
type GameConfig struct {
	Difficulty     string `json:"difficulty"`
	TimeLimit      int    `json:"time_limit"`
	TournamentMode bool   `json:"tournament_mode,omitempty"`
}

// MatchSample is one player's share of a finished game: the immutable
// performance payload the stats aggregator folds into that player's
// lifetime aggregates.
type MatchSample struct {
	Result        string // db.ResultWin / ResultLose / ResultDraw
	Score         int
	Hits          int
	GoalsScored   int
	GoalsConceded int
	Powerups      int
	Powerdowns    int
	BallChanges   int
	BallUsage     db.BallUsage
	SpecialItems  db.SpecialItems
	WallElements  db.WallElements
}

// samplesFromGame splits a persisted game row into the two per-player
// samples. The shared usage counters go into both samples, mirroring
// how the platform attributes board-wide item usage to each player.
func samplesFromGame(game *db.Game) (p1, p2 MatchSample) {
	p1 = MatchSample{
		Result:        game.Player1Result,
		Score:         game.Player1Score,
		Hits:          game.Player1Hits,
		GoalsScored:   game.Player1GoalsInFavor,
		GoalsConceded: game.Player1GoalsAgainst,
		Powerups:      game.Player1PowerupsPicked,
		Powerdowns:    game.Player1PowerdownsPicked,
		BallChanges:   game.Player1BallchangesPicked,
		BallUsage:     game.BallUsage,
		SpecialItems:  game.SpecialItems,
		WallElements:  game.WallElements,
	}
	p2 = MatchSample{
		Result:        game.Player2Result,
		Score:         game.Player2Score,
		Hits:          game.Player2Hits,
		GoalsScored:   game.Player2GoalsInFavor,
		GoalsConceded: game.Player2GoalsAgainst,
		Powerups:      game.Player2PowerupsPicked,
		Powerdowns:    game.Player2PowerdownsPicked,
		BallChanges:   game.Player2BallchangesPicked,
		BallUsage:     game.BallUsage,
		SpecialItems:  game.SpecialItems,
		WallElements:  game.WallElements,
	}
	return p1, p2
}

// classify derives the outcome columns from the two scores. winnerID
// is nil on a draw.
func classify(player1ID, player2ID uint64, score1, score2 int) (winnerID *uint64, general, result1, result2 string) {
	switch {
	case score1 > score2:
		return &player1ID, db.GeneralLeftWin, db.ResultWin, db.ResultLose
	case score2 > score1:
		return &player2ID, db.GeneralRightWin, db.ResultLose, db.ResultWin
	default:
		return nil, db.GeneralDraw, db.ResultDraw, db.ResultDraw
	}
}

// randBetween draws uniformly from [min, max].
func randBetween(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

func randBallUsage(r *rand.Rand, max int) db.BallUsage {
	return db.BallUsage{
		DefaultBalls:  r.Intn(max + 1),
		CurveBalls:    r.Intn(max + 1),
		MultiplyBalls: r.Intn(max + 1),
		SpinBalls:     r.Intn(max + 1),
		BurstBalls:    r.Intn(max + 1),
	}
}

func randSpecialItems(r *rand.Rand, max int) db.SpecialItems {
	return db.SpecialItems{
		Bullets: r.Intn(max + 1),
		Shields: r.Intn(max + 1),
	}
}

func randWallElements(r *rand.Rand, max int) db.WallElements {
	return db.WallElements{
		Pyramids:    r.Intn(max + 1),
		Escalators:  r.Intn(max + 1),
		Hourglasses: r.Intn(max + 1),
		Lightnings:  r.Intn(max + 1),
		Maws:        r.Intn(max + 1),
		Rakes:       r.Intn(max + 1),
		Trenches:    r.Intn(max + 1),
		Kites:       r.Intn(max + 1),
		Bowties:     r.Intn(max + 1),
		Honeycombs:  r.Intn(max + 1),
		Snakes:      r.Intn(max + 1),
		Vipers:      r.Intn(max + 1),
		Waystones:   r.Intn(max + 1),
	}
}

// pickTwo draws two distinct ids uniformly at random.
func pickTwo(r *rand.Rand, ids []uint64) (uint64, uint64) {
	i := r.Intn(len(ids))
	j := r.Intn(len(ids) - 1)
	if j >= i {
		j++
	}
	return ids[i], ids[j]
}

// sampleIDs draws k distinct ids uniformly at random, in drawn order.
func sampleIDs(r *rand.Rand, ids []uint64, k int) []uint64 {
	perm := r.Perm(len(ids))
	picked := make([]uint64, k)
	for i := 0; i < k; i++ {
		picked[i] = ids[perm[i]]
	}
	return picked
}
