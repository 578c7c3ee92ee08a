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

// CampaignWriteRepository handles campaign write operations.
type CampaignWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCampaignWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CampaignWriteRepository {
	return &CampaignWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new campaign and returns the created row. Campaign names are
// unique system-wide; on a name conflict no row comes back and sql.ErrNoRows
// is returned.
func (r *CampaignWriteRepository) Save(ctx context.Context, name string, playerCount, playerLevel int, completion bool, ownerID int64) (*models.CampaignDB, error) {
	query := `
		INSERT INTO campaigns (name, player_count, player_level, completion, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, player_count, player_level, completion, user_id, created_at
	`
	args := []any{name, playerCount, playerLevel, completion, ownerID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var campaign models.CampaignDB
	err := sqlx.GetContext(ctx, executor, &campaign, query, args...)

	logger.Log.Infow("campaign insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &campaign, nil
}

// CampaignReadRepository handles campaign read operations.
type CampaignReadRepository struct {
	db *sqlx.DB
}

func NewCampaignReadRepository(db *sqlx.DB) *CampaignReadRepository {
	return &CampaignReadRepository{db: db}
}

// ListByOwner returns all campaigns owned by the given user in insertion order.
func (r *CampaignReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.CampaignDB, error) {
	const query = `
		SELECT id, name, player_count, player_level, completion, user_id, created_at
		FROM campaigns
		WHERE user_id = $1
		ORDER BY id
	`

	var campaigns []models.CampaignDB
	err := r.db.SelectContext(ctx, &campaigns, query, ownerID)

	logger.Log.Infow("campaign query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"count", len(campaigns),
		"error", err,
	)

	return campaigns, err
}

// GetByID returns the campaign with the given id, or nil if none exists.
func (r *CampaignReadRepository) GetByID(ctx context.Context, id int64) (*models.CampaignDB, error) {
	const query = `
		SELECT id, name, player_count, player_level, completion, user_id, created_at
		FROM campaigns
		WHERE id = $1
	`

	var campaign models.CampaignDB
	err := r.db.GetContext(ctx, &campaign, query, id)

	logger.Log.Infow("campaign query",
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

	return &campaign, nil
}
