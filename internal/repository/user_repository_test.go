package repository_test

import (
	"context"
	"testing"

	"kanbanlive/internal/model"
	"kanbanlive/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_FindByUsername_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .* LIMIT .*`).
		WithArgs("stephen", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name", "hashed_password"}).
			AddRow(2, "stephen", "Stephen", "123"))

	// Act
	user, err := userRepo.FindByUsername(context.Background(), "stephen")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, uint(2), user.ID)
	assert.Equal(t, "stephen", user.Username)
	assert.Equal(t, "Stephen", user.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .* LIMIT .*`).
		WithArgs("nosuchuser", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	user, err := userRepo.FindByUsername(context.Background(), "nosuchuser")

	// Assert
	assert.NoError(t, err) // missing user is not an error
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_StorageError(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .* LIMIT .*`).
		WithArgs("stephen", 1).
		WillReturnError(assert.AnError)

	// Act
	user, err := userRepo.FindByUsername(context.Background(), "stephen")

	// Assert
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name", "hashed_password"}).
			AddRow(1, "admin", "Admin", "admin123").
			AddRow(2, "stephen", "Stephen", "123"))

	// Act
	users, err := userRepo.List(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, []model.User{
		{ID: 1, Username: "admin", FullName: "Admin", HashedPassword: "admin123"},
		{ID: 2, Username: "stephen", FullName: "Stephen", HashedPassword: "123"},
	}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}
