package handler

import (
	"net/http"
	"time"

	"github.com/dtroode/videoflix-server/internal/api/http/response"
	"github.com/dtroode/videoflix-server/internal/logger"
)

// Video handles the catalogue endpoints.
type Video struct {
	videoService VideoService
	logger       *logger.Logger
}

// NewVideo creates a new Video handler.
func NewVideo(videoService VideoService, logger *logger.Logger) *Video {
	return &Video{videoService: videoService, logger: logger}
}

type videoResponse struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Category     string    `json:"category"`
}

// List returns all videos, newest first.
func (h *Video) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoService.List(r.Context())
	if err != nil {
		handleError(w, h.logger, "video list", err)
		return
	}

	resp := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, videoResponse{
			ID:           v.ID,
			CreatedAt:    v.CreatedAt,
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			Category:     string(v.Category),
		})
	}

	response.WriteJSON(w, http.StatusOK, resp)
}
