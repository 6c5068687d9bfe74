package repository

import (
	"context"

	"gorm.io/gorm"

	"pong-seeder/internal/db"
)

// TournamentRepository provides data access methods for tournaments
// and their participants.
type TournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new repository bound to the given DB connection.
func NewTournamentRepository(database *gorm.DB) *TournamentRepository {
	return &TournamentRepository{db: database}
}

// Create inserts a tournament row; the generated id is written back
// into tournament.ID.
func (r *TournamentRepository) Create(ctx context.Context, tournament *db.Tournament) error {
	return r.db.WithContext(ctx).Create(tournament).Error
}

// AddParticipant registers a user in a tournament. FinalPosition
// starts nil and is assigned once the bracket resolves.
func (r *TournamentRepository) AddParticipant(ctx context.Context, tournamentID, userID uint64) error {
	p := db.TournamentParticipant{TournamentID: tournamentID, UserID: userID, IsAI: false}
	return r.db.WithContext(ctx).Create(&p).Error
}

// AssignFinalPositions records the flattened standings: the winner
// gets position 1, every other participant still unranked gets 2.
func (r *TournamentRepository) AssignFinalPositions(ctx context.Context, tournamentID, winnerID uint64) error {
	err := r.db.WithContext(ctx).
		Model(&db.TournamentParticipant{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, winnerID).
		Update("final_position", 1).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&db.TournamentParticipant{}).
		Where("tournament_id = ? AND user_id != ? AND final_position IS NULL", tournamentID, winnerID).
		Update("final_position", 2).Error
}

// ListParticipantIDs returns the user ids registered in a tournament.
func (r *TournamentRepository) ListParticipantIDs(ctx context.Context, tournamentID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.TournamentParticipant{}).
		Where("tournament_id = ?", tournamentID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
