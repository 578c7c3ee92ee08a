package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCombatReadRepository_GetByID(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCombatReadRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(3, "Goblin Ambush")

	mock.ExpectQuery("SELECT id, name FROM combats WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	combat, err := repo.GetByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.NotNil(t, combat)
	assert.Equal(t, "Goblin Ambush", combat.Name)
}

func TestCombatReadRepository_GetByID_Missing(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCombatReadRepository(db)

	mock.ExpectQuery("SELECT id, name FROM combats WHERE id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	combat, err := repo.GetByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, combat)
}

func TestCombatReadRepository_ListParticipants(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCombatReadRepository(db)

	rows := sqlmock.NewRows(playerColumns()).
		AddRow(1, "Sam", "Thorin", 120, 40, 0, 11, 6, 2, 1, 12.5, 30, 0.4, 9, 5).
		AddRow(2, "Jo", "Lyra", 80, 25, 60, 13, 8, 1, 0, 14.0, 22, 0.6, 12, 5)

	mock.ExpectQuery("JOIN combatants cb ON cb.player_id = p.id WHERE cb.combat_id").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	players, err := repo.ListParticipants(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, players, 2)
	assert.Equal(t, "Sam", players[0].PlayerName)
	assert.Equal(t, "Jo", players[1].PlayerName)
}

func TestCombatReadRepository_ListParticipants_Empty(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewCombatReadRepository(db)

	mock.ExpectQuery("JOIN combatants cb ON cb.player_id = p.id WHERE cb.combat_id").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(playerColumns()))

	players, err := repo.ListParticipants(context.Background(), 8)
	assert.NoError(t, err)
	assert.Empty(t, players)
}
