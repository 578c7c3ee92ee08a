package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/models"
)

// CombatReadRepository handles combat read operations.
type CombatReadRepository struct {
	db *sqlx.DB
}

func NewCombatReadRepository(db *sqlx.DB) *CombatReadRepository {
	return &CombatReadRepository{db: db}
}

// GetByID returns the combat with the given id, or nil if none exists.
func (r *CombatReadRepository) GetByID(ctx context.Context, id int64) (*models.CombatDB, error) {
	const query = `
		SELECT id, name
		FROM combats
		WHERE id = $1
	`

	var combat models.CombatDB
	err := r.db.GetContext(ctx, &combat, query, id)

	logger.Log.Infow("combat query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &combat, nil
}

// ListParticipants returns the players participating in the given combat,
// resolved through the combatants association.
func (r *CombatReadRepository) ListParticipants(ctx context.Context, combatID int64) ([]models.PlayerDB, error) {
	const query = `
		SELECT p.id, p.player_name, p.character_name,
		       p.damage_dealt, p.damage_received, p.healing_dealt,
		       p.average_saving_throw, p.saves_made, p.crit_successes, p.crit_failures,
		       p.average_attack_roll, p.attacks_made, p.enemy_save_rate, p.saves_forced,
		       p.campaign_id
		FROM players p
		JOIN combatants cb ON cb.player_id = p.id
		WHERE cb.combat_id = $1
		ORDER BY p.id
	`

	var players []models.PlayerDB
	err := r.db.SelectContext(ctx, &players, query, combatID)

	logger.Log.Infow("combat query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{combatID},
		"count", len(players),
		"error", err,
	)

	return players, err
}
