package repositories

import (
	"context"
	"testing"

	"github.com/mdhaziqomar/memories/models"

	"github.com/stretchr/testify/require"
)

func TestInsertIfAbsentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormLikeRepository(db)
	ctx := context.Background()

	inserted, err := repo.InsertIfAbsent(ctx, nil, &models.MediaLike{MediaID: 1, UserID: 2})
	require.NoError(t, err)
	require.True(t, inserted)

	// The duplicate is absorbed by the unique index, not reported as an error.
	inserted, err = repo.InsertIfAbsent(ctx, nil, &models.MediaLike{MediaID: 1, UserID: 2})
	require.NoError(t, err)
	require.False(t, inserted)

	var count int64
	require.NoError(t, db.Model(&models.MediaLike{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteByKeyReportsExistence(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormLikeRepository(db)
	ctx := context.Background()

	deleted, err := repo.DeleteByKey(ctx, nil, 1, 2)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = repo.InsertIfAbsent(ctx, nil, &models.MediaLike{MediaID: 1, UserID: 2})
	require.NoError(t, err)

	deleted, err = repo.DeleteByKey(ctx, nil, 1, 2)
	require.NoError(t, err)
	require.True(t, deleted)

	count, err := repo.CountByMedia(ctx, nil, 1)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestCountByMediaScopesToMedia(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormLikeRepository(db)
	ctx := context.Background()

	for _, pair := range [][2]uint{{1, 10}, {1, 11}, {2, 10}} {
		_, err := repo.InsertIfAbsent(ctx, nil, &models.MediaLike{MediaID: pair[0], UserID: pair[1]})
		require.NoError(t, err)
	}

	count, err := repo.CountByMedia(ctx, nil, 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestTagUpsertOverwritesExistingPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormTagRepository(db)
	ctx := context.Background()

	x1, y1 := 10.0, 20.0
	require.NoError(t, repo.Upsert(ctx, nil, &models.MediaTag{
		MediaID: 1, TaggedUserID: 5, TaggedBy: 2, PositionX: &x1, PositionY: &y1,
	}))

	x2, y2 := 70.0, 80.0
	require.NoError(t, repo.Upsert(ctx, nil, &models.MediaTag{
		MediaID: 1, TaggedUserID: 5, TaggedBy: 3, PositionX: &x2, PositionY: &y2,
	}))

	tags, err := repo.ListByMedia(ctx, nil, 1)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.EqualValues(t, 3, tags[0].TaggedBy)
	require.NotNil(t, tags[0].PositionX)
	require.EqualValues(t, 70.0, *tags[0].PositionX)
	require.EqualValues(t, 80.0, *tags[0].PositionY)
}

func TestTagUpsertKeepsDistinctPairs(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormTagRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, nil, &models.MediaTag{MediaID: 1, TaggedUserID: 5, TaggedBy: 2}))
	require.NoError(t, repo.Upsert(ctx, nil, &models.MediaTag{MediaID: 1, TaggedUserID: 6, TaggedBy: 2}))
	require.NoError(t, repo.Upsert(ctx, nil, &models.MediaTag{MediaID: 2, TaggedUserID: 5, TaggedBy: 2}))

	tags, err := repo.ListByMedia(ctx, nil, 1)
	require.NoError(t, err)
	require.Len(t, tags, 2)
}
