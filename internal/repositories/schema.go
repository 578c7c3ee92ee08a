package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/tavernkeep/campaign-tracker/internal/logger"
)

// schema is applied at process start. Every statement is idempotent so
// reapplying it against an existing database is a no-op.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS campaigns (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	player_count INT NOT NULL DEFAULT 0,
	player_level INT NOT NULL DEFAULT 0,
	completion BOOLEAN NOT NULL DEFAULT FALSE,
	user_id BIGINT NOT NULL REFERENCES users (id),
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS players (
	id BIGSERIAL PRIMARY KEY,
	player_name TEXT NOT NULL,
	character_name TEXT NOT NULL,
	damage_dealt INT NOT NULL DEFAULT 0,
	damage_received INT NOT NULL DEFAULT 0,
	healing_dealt INT NOT NULL DEFAULT 0,
	average_saving_throw INT NOT NULL DEFAULT 0,
	saves_made INT NOT NULL DEFAULT 0,
	crit_successes INT NOT NULL DEFAULT 0,
	crit_failures INT NOT NULL DEFAULT 0,
	average_attack_roll DOUBLE PRECISION NOT NULL DEFAULT 0,
	attacks_made INT NOT NULL DEFAULT 0,
	enemy_save_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
	saves_forced INT NOT NULL DEFAULT 0,
	campaign_id BIGINT NOT NULL REFERENCES campaigns (id)
);

CREATE TABLE IF NOT EXISTS combats (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS combatants (
	player_id BIGINT NOT NULL REFERENCES players (id),
	combat_id BIGINT NOT NULL REFERENCES combats (id),
	PRIMARY KEY (player_id, combat_id)
);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema migration",
		"error", err,
	)

	return err
}
