package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func setupDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func userRows(id int64, username, hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(id, username, hash, time.Now())
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(userRows(1, "alice", "hash"))

	user, err := repo.GetByUsername(context.Background(), "alice")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername_Missing(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users WHERE username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByUsername(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRows(1, "alice", "hash"))

	user, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnRows(userRows(1, "alice", "hash"))

	user, err := repo.Save(context.Background(), "alice", "hash")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_Conflict(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewUserWriteRepository(db, nil)

	// ON CONFLICT DO NOTHING returns no row for a duplicate username
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.Save(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, user)
}

func TestUserWriteRepository_Save_UsesContextTx(t *testing.T) {
	db, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnRows(userRows(1, "alice", "hash"))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	assert.NoError(t, err)

	repo := NewUserWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	user, err := repo.Save(context.Background(), "alice", "hash")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
