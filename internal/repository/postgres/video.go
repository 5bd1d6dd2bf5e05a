package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/videoflix-server/internal/model"
)

var _ model.VideoStore = (*VideoRepository)(nil)

type VideoRepository struct {
	db *Connection
}

func NewVideoRepository(db *Connection) *VideoRepository {
	return &VideoRepository{
		db: db,
	}
}

// List returns the catalogue, newest first.
func (r *VideoRepository) List(ctx context.Context) ([]model.Video, error) {
	query := `SELECT id, title, description, category, thumbnail_key, hls_ready, created_at
			  FROM videos ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	videos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Video, error) {
		var v model.Video
		err := row.Scan(&v.ID, &v.Title, &v.Description, &v.Category, &v.ThumbnailKey, &v.HLSReady, &v.CreatedAt)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan videos: %w", err)
	}

	return videos, nil
}
