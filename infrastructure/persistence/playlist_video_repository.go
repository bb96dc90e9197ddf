package persistence

import (
	"context"
	"database/sql"

	"mytube-channels/domain/model"
	"mytube-channels/domain/repository"
)

type PlaylistVideoRepository struct {
	db *sql.DB
}

func NewPlaylistVideoRepository(db *sql.DB) repository.IPlaylistVideoRepository {
	return &PlaylistVideoRepository{db: db}
}

func (r *PlaylistVideoRepository) GetByID(ctx context.Context, id int) (model.PlaylistVideo, error) {
	var pv model.PlaylistVideo
	err := r.db.QueryRowContext(ctx,
		`SELECT id, playlist_id, video_id FROM playlist_videos WHERE id = $1`, id).
		Scan(&pv.ID, &pv.PlaylistID, &pv.VideoID)
	return pv, err
}

func (r *PlaylistVideoRepository) FindAll(ctx context.Context, limit, offset int) ([]model.PlaylistVideo, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM playlist_videos`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, playlist_id, video_id FROM playlist_videos ORDER BY id ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var list []model.PlaylistVideo
	for rows.Next() {
		var pv model.PlaylistVideo
		if err := rows.Scan(&pv.ID, &pv.PlaylistID, &pv.VideoID); err != nil {
			return nil, 0, err
		}
		list = append(list, pv)
	}
	return list, total, rows.Err()
}

func (r *PlaylistVideoRepository) Save(ctx context.Context, pv model.PlaylistVideo) (model.PlaylistVideo, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.PlaylistVideo{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if pv.ID == 0 {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2) RETURNING id`,
			pv.PlaylistID, pv.VideoID,
		).Scan(&pv.ID)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE playlist_videos SET playlist_id = $1, video_id = $2 WHERE id = $3`,
			pv.PlaylistID, pv.VideoID, pv.ID)
	}
	if err != nil {
		return model.PlaylistVideo{}, err
	}
	if err = tx.Commit(); err != nil {
		return model.PlaylistVideo{}, err
	}
	return pv, nil
}

func (r *PlaylistVideoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM playlist_videos WHERE id = $1`, id)
	return err
}
