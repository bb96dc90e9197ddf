package persistence

import (
	"context"
	"database/sql"

	"mytube-channels/domain/model"
	"mytube-channels/domain/repository"
)

type VideoRepository struct {
	db *sql.DB
}

func NewVideoRepository(db *sql.DB) repository.IVideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) GetByID(ctx context.Context, id int) (model.Video, error) {
	var v model.Video
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, upload_date FROM videos WHERE id = $1`, id).
		Scan(&v.ID, &v.Title, &v.UploadDate)
	return v, err
}
