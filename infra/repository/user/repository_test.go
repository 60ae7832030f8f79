package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/exchange/pkg/domain/user"
	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

var userColumns = []string{"id", "username", "email", "password", "created_at", "updated_at"}

func TestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	create := &dto.UserCreate{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), create))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	require.Error(t, repo.Create(context.Background(), create))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func uniqueViolation() error {
	return &pgconn.PgError{
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "idx_users_username"`,
		ConstraintName: "idx_users_username",
	}
}

func TestRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnError(uniqueViolation())
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &dto.UserCreate{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
	})
	assert.ErrorIs(t, err, user.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	username := "alice"

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+) WHERE id = (.+)`).
		WillReturnError(uniqueViolation())
	mock.ExpectRollback()

	err := repo.Update(context.Background(), uuid.New(), &dto.UserUpdate{Username: &username})
	assert.ErrorIs(t, err, user.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapGormErrorToDomain(t *testing.T) {
	other := errors.New("connection lost")
	testCases := []struct {
		desc string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"duplicated key", gorm.ErrDuplicatedKey, user.ErrUserExists},
		{"wrapped duplicated key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), user.ErrUserExists},
		{"record not found", gorm.ErrRecordNotFound, user.ErrUserNotFound},
		{"other", other, other},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, mapGormErrorToDomain(tc.in))
		})
	}
}

func TestRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "alice", "alice@example.com", "hashed", now, now))

	got, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "hashed", got.HashedPassword)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows(userColumns))

	got, err := repo.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsername_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnError(errors.New("connection lost"))

	got, err := repo.GetByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()
	email := "new@example.com"

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), id, &dto.UserUpdate{Email: &email}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NothingToDo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	require.NoError(t, repo.Update(context.Background(), uuid.New(), &dto.UserUpdate{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY username`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(uuid.New().String(), "admin", "admin@exchange.com", "h1", now, now).
			AddRow(uuid.New().String(), "alice", "alice@example.com", "h2", now, now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "admin", got[0].Username)
	assert.Equal(t, "alice", got[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
