package services

import (
	"context"
	"errors"

	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/models"
)

// ErrCombatNotFound is returned for unknown combat ids.
var ErrCombatNotFound = errors.New("combat not found")

// CombatReader defines read operations for combats and their participants.
type CombatReader interface {
	GetByID(ctx context.Context, id int64) (*models.CombatDB, error)
	ListParticipants(ctx context.Context, combatID int64) ([]models.PlayerDB, error)
}

// RosterService exposes the read-only player and combat surface. Player and
// combat rows have no mutation operations; they are queryable state.
type RosterService struct {
	playerRepo PlayerReader
	combatRepo CombatReader
}

// NewRosterService creates a new RosterService.
func NewRosterService(playerRepo PlayerReader, combatRepo CombatReader) *RosterService {
	return &RosterService{
		playerRepo: playerRepo,
		combatRepo: combatRepo,
	}
}

// Players returns every player across the campaigns the caller owns.
func (s *RosterService) Players(ctx context.Context, ownerID int64) ([]models.PlayerDB, error) {
	players, err := s.playerRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list players", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return players, nil
}

// Combat returns a combat and the players participating in it.
func (s *RosterService) Combat(ctx context.Context, combatID int64) (*models.CombatDB, []models.PlayerDB, error) {
	combat, err := s.combatRepo.GetByID(ctx, combatID)
	if err != nil {
		logger.Log.Errorw("failed to get combat", "combat_id", combatID, "error", err)
		return nil, nil, err
	}
	if combat == nil {
		return nil, nil, ErrCombatNotFound
	}

	participants, err := s.combatRepo.ListParticipants(ctx, combatID)
	if err != nil {
		logger.Log.Errorw("failed to list combatants", "combat_id", combatID, "error", err)
		return nil, nil, err
	}

	return combat, participants, nil
}
