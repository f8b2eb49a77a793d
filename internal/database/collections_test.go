package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

func testCollection(id, userID string, typ entities.CollectionType) *entities.Collection {
	now := time.Now()
	return &entities.Collection{
		ID:            id,
		Name:          string(typ),
		Type:          typ,
		VocabularyIDs: entities.StringList{},
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCollections_UpsertAndScan(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	favorites := testCollection("c1", "default-user", entities.CollectionFavorites)
	favorites.VocabularyIDs = entities.StringList{"1", "2"}
	require.NoError(t, db.UpdateCollection(ctx, favorites))
	require.NoError(t, db.UpdateCollection(ctx, testCollection("c2", "default-user", entities.CollectionCustom)))
	require.NoError(t, db.UpdateCollection(ctx, testCollection("c3", "someone-else", entities.CollectionFavorites)))

	collections, err := db.GetCollections(ctx, "default-user")
	require.NoError(t, err)
	assert.Len(t, collections, 2)

	// An existing id is overwritten, not rejected.
	favorites.VocabularyIDs = entities.StringList{"1", "2", "3"}
	require.NoError(t, db.UpdateCollection(ctx, favorites))

	read, err := db.GetCollection(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, entities.StringList{"1", "2", "3"}, read.VocabularyIDs)
}

func TestCollections_ByType(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.UpdateCollection(ctx, testCollection("c1", "default-user", entities.CollectionFavorites)))
	require.NoError(t, db.UpdateCollection(ctx, testCollection("c2", "default-user", entities.CollectionCustom)))

	byType, err := db.GetCollectionsByType(ctx, "default-user", entities.CollectionFavorites)
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "c1", byType[0].ID)
}

func TestDeleteCollection_MissingIsNoop(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, db.DeleteCollection(context.Background(), "missing"))
}
