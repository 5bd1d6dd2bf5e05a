package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

type Video struct {
	videos       model.VideoStore
	storage      model.Storage
	thumbnailTTL time.Duration
	logger       *logger.Logger
}

func NewVideo(videos model.VideoStore, storage model.Storage, thumbnailTTL time.Duration, logger *logger.Logger) *Video {
	return &Video{
		videos:       videos,
		storage:      storage,
		thumbnailTTL: thumbnailTTL,
		logger:       logger,
	}
}

// List returns the catalogue newest first with signed thumbnail URLs.
func (v *Video) List(ctx context.Context) ([]model.Video, error) {
	videos, err := v.videos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	for i := range videos {
		if videos[i].ThumbnailKey == "" {
			continue
		}

		url, err := v.storage.PresignedURL(ctx, videos[i].ThumbnailKey, v.thumbnailTTL)
		if err != nil {
			v.logger.Warn("Video service: failed to sign thumbnail url",
				"video_id", videos[i].ID,
				"key", videos[i].ThumbnailKey,
				"error", err.Error())
			continue
		}
		videos[i].ThumbnailURL = url
	}

	return videos, nil
}
