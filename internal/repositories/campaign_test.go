package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func campaignColumns() []string {
	return []string{"id", "name", "player_count", "player_level", "completion", "user_id", "created_at"}
}

func TestCampaignWriteRepository_Save(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	rows := sqlmock.NewRows(campaignColumns()).
		AddRow(1, "Dragon Heist", 4, 3, true, 7, time.Now())

	mock.ExpectQuery("INSERT INTO campaigns").
		WithArgs("Dragon Heist", 4, 3, true, int64(7)).
		WillReturnRows(rows)

	campaign, err := repo.Save(context.Background(), "Dragon Heist", 4, 3, true, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), campaign.ID)
	assert.Equal(t, "Dragon Heist", campaign.Name)
	assert.True(t, campaign.Completion)
	assert.Equal(t, int64(7), campaign.OwnerID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignWriteRepository_Save_DuplicateName(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	// ON CONFLICT DO NOTHING returns no row for a duplicate name, even across owners
	mock.ExpectQuery("INSERT INTO campaigns").
		WithArgs("Dragon Heist", 4, 3, false, int64(8)).
		WillReturnError(sql.ErrNoRows)

	campaign, err := repo.Save(context.Background(), "Dragon Heist", 4, 3, false, 8)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, campaign)
}

func TestCampaignReadRepository_ListByOwner(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCampaignReadRepository(db)

	rows := sqlmock.NewRows(campaignColumns()).
		AddRow(1, "Dragon Heist", 4, 3, false, 7, time.Now()).
		AddRow(5, "Curse of Strahd", 5, 1, false, 7, time.Now())

	mock.ExpectQuery("SELECT id, name, player_count, player_level, completion, user_id, created_at FROM campaigns WHERE user_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	campaigns, err := repo.ListByOwner(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, campaigns, 2)
	// insertion order
	assert.Equal(t, int64(1), campaigns[0].ID)
	assert.Equal(t, int64(5), campaigns[1].ID)
}

func TestCampaignReadRepository_ListByOwner_Empty(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCampaignReadRepository(db)

	mock.ExpectQuery("SELECT id, name, player_count, player_level, completion, user_id, created_at FROM campaigns WHERE user_id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(campaignColumns()))

	campaigns, err := repo.ListByOwner(context.Background(), 9)
	assert.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestCampaignReadRepository_GetByID(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCampaignReadRepository(db)

	rows := sqlmock.NewRows(campaignColumns()).
		AddRow(5, "Curse of Strahd", 5, 1, false, 7, time.Now())

	mock.ExpectQuery("SELECT id, name, player_count, player_level, completion, user_id, created_at FROM campaigns WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	campaign, err := repo.GetByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.NotNil(t, campaign)
	assert.Equal(t, "Curse of Strahd", campaign.Name)
}

func TestCampaignReadRepository_GetByID_Missing(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCampaignReadRepository(db)

	mock.ExpectQuery("SELECT id, name, player_count, player_level, completion, user_id, created_at FROM campaigns WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	campaign, err := repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, campaign)
}
