package repository

import (
	"Inkwell/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func TestUserLookupIndexes(t *testing.T) {
	db := setupUserDB(t)

	migrator := db.Migrator()
	require.True(t, migrator.HasIndex(&model.User{}, "idx_token_identifier"))
	require.True(t, migrator.HasIndex(&model.User{}, "idx_username"))
	require.True(t, migrator.HasIndex(&model.User{}, "idx_email"))
}

func TestGetUserByUsername(t *testing.T) {
	db := setupUserDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &model.User{
		TokenIdentifier: "idp|alice",
		Username:        "alice",
		Email:           "alice@example.com",
	}))

	user, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "alice", user.Username)

	missing, err := repo.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)
}
