package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/models"
)

// PlayerReadRepository handles player read operations. Players have no write
// surface in the service; rows enter the table out of band.
type PlayerReadRepository struct {
	db *sqlx.DB
}

func NewPlayerReadRepository(db *sqlx.DB) *PlayerReadRepository {
	return &PlayerReadRepository{db: db}
}

// ListByCampaign returns all players of the given campaign in insertion order.
func (r *PlayerReadRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]models.PlayerDB, error) {
	const query = `
		SELECT id, player_name, character_name,
		       damage_dealt, damage_received, healing_dealt,
		       average_saving_throw, saves_made, crit_successes, crit_failures,
		       average_attack_roll, attacks_made, enemy_save_rate, saves_forced,
		       campaign_id
		FROM players
		WHERE campaign_id = $1
		ORDER BY id
	`

	var players []models.PlayerDB
	err := r.db.SelectContext(ctx, &players, query, campaignID)

	logger.Log.Infow("player query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campaignID},
		"count", len(players),
		"error", err,
	)

	return players, err
}

// ListByOwner returns all players across every campaign the given user owns.
func (r *PlayerReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.PlayerDB, error) {
	const query = `
		SELECT p.id, p.player_name, p.character_name,
		       p.damage_dealt, p.damage_received, p.healing_dealt,
		       p.average_saving_throw, p.saves_made, p.crit_successes, p.crit_failures,
		       p.average_attack_roll, p.attacks_made, p.enemy_save_rate, p.saves_forced,
		       p.campaign_id
		FROM players p
		JOIN campaigns c ON c.id = p.campaign_id
		WHERE c.user_id = $1
		ORDER BY p.id
	`

	var players []models.PlayerDB
	err := r.db.SelectContext(ctx, &players, query, ownerID)

	logger.Log.Infow("player query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"count", len(players),
		"error", err,
	)

	return players, err
}
