package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/videoflix-server/internal/mocks"
	"github.com/dtroode/videoflix-server/internal/model"
	"github.com/dtroode/videoflix-server/internal/testutil"
)

func TestVideo_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewVideoService(t)
		svc.On("List", mock.Anything).Return([]model.Video{{
			ID:           2,
			Title:        "Night Train",
			Description:  "A thriller",
			Category:     model.VideoCategoryDrama,
			ThumbnailURL: "http://minio/thumbs/2.jpg",
			CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}}, nil).Once()

		rec := httptest.NewRecorder()
		NewVideo(svc, testutil.MakeNoopLogger()).List(rec, httptest.NewRequest(http.MethodGet, "/video/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{
			"id": 2,
			"created_at": "2024-01-02T03:04:05Z",
			"title": "Night Train",
			"description": "A thriller",
			"thumbnail_url": "http://minio/thumbs/2.jpg",
			"category": "Drama"
		}]`, rec.Body.String())
	})

	t.Run("empty catalogue", func(t *testing.T) {
		svc := mocks.NewVideoService(t)
		svc.On("List", mock.Anything).Return(nil, nil).Once()

		rec := httptest.NewRecorder()
		NewVideo(svc, testutil.MakeNoopLogger()).List(rec, httptest.NewRequest(http.MethodGet, "/video/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		svc := mocks.NewVideoService(t)
		svc.On("List", mock.Anything).Return(nil, assert.AnError).Once()

		rec := httptest.NewRecorder()
		NewVideo(svc, testutil.MakeNoopLogger()).List(rec, httptest.NewRequest(http.MethodGet, "/video/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
