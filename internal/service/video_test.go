package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/videoflix-server/internal/mocks"
	"github.com/dtroode/videoflix-server/internal/model"
	"github.com/dtroode/videoflix-server/internal/testutil"
)

func TestVideo_List(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewVideoStore(t)
	storage := mocks.NewStorage(t)

	store.On("List", ctx).Return([]model.Video{
		{ID: 2, Title: "new", ThumbnailKey: "thumbs/2.jpg"},
		{ID: 1, Title: "old"},
		{ID: 3, Title: "broken", ThumbnailKey: "thumbs/3.jpg"},
	}, nil).Once()
	storage.On("PresignedURL", ctx, "thumbs/2.jpg", time.Hour).Return("https://cdn/thumbs/2.jpg?sig", nil).Once()
	storage.On("PresignedURL", ctx, "thumbs/3.jpg", time.Hour).Return("", assert.AnError).Once()

	svc := NewVideo(store, storage, time.Hour, testutil.MakeNoopLogger())

	videos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "https://cdn/thumbs/2.jpg?sig", videos[0].ThumbnailURL)
	assert.Empty(t, videos[1].ThumbnailURL)
	assert.Empty(t, videos[2].ThumbnailURL)
}

func TestVideo_List_StoreError(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewVideoStore(t)
	store.On("List", ctx).Return(nil, assert.AnError).Once()

	svc := NewVideo(store, mocks.NewStorage(t), time.Hour, testutil.MakeNoopLogger())

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, assert.AnError)
}
