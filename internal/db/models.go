package db

import (
	"time"
)

// Per-player outcome values persisted on games.
const (
	ResultWin  = "win"
	ResultLose = "lose"
	ResultDraw = "draw"
)

// Board-side outcome values persisted on games.
const (
	GeneralLeftWin  = "leftWin"
	GeneralRightWin = "rightWin"
	GeneralDraw     = "draw"
)

// TournamentFinished is the only status this tool ever writes: every
// simulated tournament is created already played out.
const TournamentFinished = "finished"

// BallUsage counts per ball type, shared between a single game and a
// user's lifetime totals (embedded with "total_" prefix in UserStats).
type BallUsage struct {
	DefaultBalls  int `gorm:"not null;default:0"`
	CurveBalls    int `gorm:"not null;default:0"`
	MultiplyBalls int `gorm:"not null;default:0"`
	SpinBalls     int `gorm:"not null;default:0"`
	BurstBalls    int `gorm:"not null;default:0"`
}

// Add accumulates another game's ball usage into b.
func (b *BallUsage) Add(o BallUsage) {
	b.DefaultBalls += o.DefaultBalls
	b.CurveBalls += o.CurveBalls
	b.MultiplyBalls += o.MultiplyBalls
	b.SpinBalls += o.SpinBalls
	b.BurstBalls += o.BurstBalls
}

// SpecialItems counts per special item type.
type SpecialItems struct {
	Bullets int `gorm:"not null;default:0"`
	Shields int `gorm:"not null;default:0"`
}

// Add accumulates another game's special item usage into s.
func (s *SpecialItems) Add(o SpecialItems) {
	s.Bullets += o.Bullets
	s.Shields += o.Shields
}

// WallElements counts per wall element type.
type WallElements struct {
	Pyramids    int `gorm:"not null;default:0"`
	Escalators  int `gorm:"not null;default:0"`
	Hourglasses int `gorm:"not null;default:0"`
	Lightnings  int `gorm:"not null;default:0"`
	Maws        int `gorm:"not null;default:0"`
	Rakes       int `gorm:"not null;default:0"`
	Trenches    int `gorm:"not null;default:0"`
	Kites       int `gorm:"not null;default:0"`
	Bowties     int `gorm:"not null;default:0"`
	Honeycombs  int `gorm:"not null;default:0"`
	Snakes      int `gorm:"not null;default:0"`
	Vipers      int `gorm:"not null;default:0"`
	Waystones   int `gorm:"not null;default:0"`
}

// Add accumulates another game's wall element usage into w.
func (w *WallElements) Add(o WallElements) {
	w.Pyramids += o.Pyramids
	w.Escalators += o.Escalators
	w.Hourglasses += o.Hourglasses
	w.Lightnings += o.Lightnings
	w.Maws += o.Maws
	w.Rakes += o.Rakes
	w.Trenches += o.Trenches
	w.Kites += o.Kites
	w.Bowties += o.Bowties
	w.Honeycombs += o.Honeycombs
	w.Snakes += o.Snakes
	w.Vipers += o.Vipers
	w.Waystones += o.Waystones
}

// User table. Rows are written once by the account seeder and never
// updated here.
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;size:64;not null"`
	Email        string    `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Provider     string    `gorm:"size:32;not null;default:local"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// Friend is a directed friendship edge user -> friend.
//
// Composite PK: (UserID, FriendID)
//   - One row per ordered pair; re-seeding an existing edge is a no-op.
//
// Only the forward direction is written per iteration. Reciprocity is
// the consuming application's concern, not this generator's.
type Friend struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false"`
	FriendID  uint64    `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Game is the immutable record of one simulated contest. Written once
// by the match or tournament seeder, never mutated afterwards.
type Game struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	IsTournament bool    `gorm:"not null;default:false"`
	TournamentID *uint64 `gorm:"index"`

	Player1ID uint64  `gorm:"not null;index"`
	Player2ID uint64  `gorm:"not null;index"`
	WinnerID  *uint64 // nil on a draw

	Player1Score  int    `gorm:"not null"`
	Player2Score  int    `gorm:"not null"`
	GameMode      string `gorm:"size:32;not null"`
	GeneralResult string `gorm:"size:16;not null"`

	ConfigJSON        string `gorm:"type:text"`
	SmartContractLink string `gorm:"size:255"`
	ContractAddress   string `gorm:"size:64"`

	BallUsage    BallUsage    `gorm:"embedded"`
	SpecialItems SpecialItems `gorm:"embedded"`
	WallElements WallElements `gorm:"embedded"`

	Player1Hits              int    `gorm:"not null"`
	Player1GoalsInFavor      int    `gorm:"not null"`
	Player1GoalsAgainst      int    `gorm:"not null"`
	Player1PowerupsPicked    int    `gorm:"not null"`
	Player1PowerdownsPicked  int    `gorm:"not null"`
	Player1BallchangesPicked int    `gorm:"not null"`
	Player1Result            string `gorm:"size:8;not null"`

	Player2Hits              int    `gorm:"not null"`
	Player2GoalsInFavor      int    `gorm:"not null"`
	Player2GoalsAgainst      int    `gorm:"not null"`
	Player2PowerupsPicked    int    `gorm:"not null"`
	Player2PowerdownsPicked  int    `gorm:"not null"`
	Player2BallchangesPicked int    `gorm:"not null"`
	Player2Result            string `gorm:"size:8;not null"`

	EndedAt time.Time `gorm:"not null"`
}

// UserStats is the denormalized aggregate row, one per user, lazily
// created on the user's first game and mutated additively by every
// game they play. The derived rates are maintained incrementally by
// the stats aggregator; they are never recomputed from game history.
type UserStats struct {
	UserID uint64 `gorm:"primaryKey;autoIncrement:false"`

	Wins   int `gorm:"not null;default:0"`
	Losses int `gorm:"not null;default:0"`
	Draws  int `gorm:"not null;default:0"`

	TotalHits              int `gorm:"not null;default:0"`
	TotalGoalsScored       int `gorm:"not null;default:0"`
	TotalGoalsConceded     int `gorm:"not null;default:0"`
	TotalPowerupsPicked    int `gorm:"not null;default:0"`
	TotalPowerdownsPicked  int `gorm:"not null;default:0"`
	TotalBallchangesPicked int `gorm:"not null;default:0"`

	BallUsage    BallUsage    `gorm:"embedded;embeddedPrefix:total_"`
	SpecialItems SpecialItems `gorm:"embedded;embeddedPrefix:total_"`
	WallElements WallElements `gorm:"embedded;embeddedPrefix:total_"`

	HighestScore int `gorm:"not null;default:0"`
	TotalGames   int `gorm:"not null;default:0"`

	TotalTournaments int `gorm:"not null;default:0"`
	TournamentsWon   int `gorm:"not null;default:0"`
	TournamentsLost  int `gorm:"not null;default:0"`

	WinRate         float64 `gorm:"not null;default:0"`
	AverageScore    float64 `gorm:"not null;default:0"`
	GoalsPerGame    float64 `gorm:"not null;default:0"`
	HitsPerGame     float64 `gorm:"not null;default:0"`
	PowerupsPerGame float64 `gorm:"not null;default:0"`

	LastUpdated time.Time `gorm:"autoUpdateTime"`
}

// Tournament table.
type Tournament struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:64;not null"`
	Status    string    `gorm:"size:16;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TournamentParticipant links a user into a tournament.
//
// FinalPosition stays nil until the bracket resolves, then is set
// exactly once: 1 for the winner, 2 for everyone else.
type TournamentParticipant struct {
	TournamentID  uint64 `gorm:"primaryKey;autoIncrement:false"`
	UserID        uint64 `gorm:"primaryKey;autoIncrement:false"`
	IsAI          bool   `gorm:"not null;default:false"`
	FinalPosition *int
}
