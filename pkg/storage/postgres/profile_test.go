package postgres_test

import (
	"context"
	"testing"

	"urs/pkg/domain"
	"urs/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStoreProfile_Idempotent(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())

	first, err := pg.StoreProfile(ctx, domain.Profile{ID: userID, Email: "a@b.c"})
	require.NoError(t, err)
	require.Equal(t, userID, first.ID)
	require.Equal(t, "a@b.c", first.Email)
	require.False(t, first.CreatedAt.IsZero())

	// inserting the same ID again is a no-op returning the current row
	second, err := pg.StoreProfile(ctx, domain.Profile{ID: userID, Email: "other@b.c"})
	require.NoError(t, err)
	require.Equal(t, userID, second.ID)
	require.Equal(t, "a@b.c", second.Email)
}

func TestProfile_Unknown(t *testing.T) {
	pg := setupTestDB(t)

	got, err := pg.Profile(context.Background(), domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUpdateProfile(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)

	clientID := "sealed-client-id"
	username := "reddituser"
	got, err := pg.UpdateProfile(ctx, userID, storage.ProfileUpdates{
		RedditClientID: &clientID,
		RedditUsername: &username,
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, clientID, got.RedditClientID)
	require.Equal(t, username, got.RedditUsername)
	require.Empty(t, got.RedditClientSecret, "untouched field stays empty")
	require.False(t, got.UpdatedAt.IsZero())
}

func TestUpdateProfile_ClearsCredential(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	clientID := "sealed-client-id"
	_, err := pg.UpdateProfile(ctx, userID, storage.ProfileUpdates{RedditClientID: &clientID})
	require.NoError(t, err)

	empty := ""
	got, err := pg.UpdateProfile(ctx, userID, storage.ProfileUpdates{RedditClientID: &empty})
	require.NoError(t, err)
	require.Empty(t, got.RedditClientID)
}

func TestUpdateProfile_Unknown(t *testing.T) {
	pg := setupTestDB(t)

	email := "a@b.c"
	got, err := pg.UpdateProfile(context.Background(), domain.UserID(uuid.New()),
		storage.ProfileUpdates{Email: &email})
	require.NoError(t, err)
	require.Nil(t, got)
}
