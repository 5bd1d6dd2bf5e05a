package model

import (
	"context"
	"time"
)

// VideoStore defines read access to the video catalogue.
type VideoStore interface {
	List(ctx context.Context) ([]Video, error)
}

// Video is a catalogue entry.
type Video struct {
	ID           int64
	Title        string
	Description  string
	Category     VideoCategory
	ThumbnailKey string
	ThumbnailURL string
	HLSReady     bool
	CreatedAt    time.Time
}

// VideoCategory enumerates video genres.
type VideoCategory string

const (
	VideoCategoryDrama       VideoCategory = "Drama"
	VideoCategoryRomance     VideoCategory = "Romance"
	VideoCategoryAction      VideoCategory = "Action"
	VideoCategoryComedy      VideoCategory = "Comedy"
	VideoCategoryDocumentary VideoCategory = "Documentary"
)
