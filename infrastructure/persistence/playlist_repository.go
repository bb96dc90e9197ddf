package persistence

import (
	"context"
	"database/sql"

	"mytube-channels/domain/model"
	"mytube-channels/domain/repository"
)

const playlistColumns = "id, user_id, playlist_name, creation_date, visibility, deleted"

type PlaylistRepository struct {
	db *sql.DB
}

func NewPlaylistRepository(db *sql.DB) repository.IPlaylistRepository {
	return &PlaylistRepository{db: db}
}

func scanPlaylist(row interface{ Scan(...interface{}) error }) (model.Playlist, error) {
	var pl model.Playlist
	err := row.Scan(&pl.ID, &pl.UserID, &pl.PlaylistName, &pl.CreationDate, &pl.Visibility, &pl.Deleted)
	return pl, err
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id int) (model.Playlist, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+playlistColumns+` FROM playlists WHERE id = $1`, id)
	return scanPlaylist(row)
}

func (r *PlaylistRepository) FindAllByDeletedFalse(ctx context.Context, limit, offset int) ([]model.Playlist, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM playlists WHERE deleted = FALSE`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+playlistColumns+` FROM playlists WHERE deleted = FALSE ORDER BY id ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var playlists []model.Playlist
	for rows.Next() {
		pl, err := scanPlaylist(rows)
		if err != nil {
			return nil, 0, err
		}
		playlists = append(playlists, pl)
	}
	return playlists, total, rows.Err()
}

func (r *PlaylistRepository) ExistsByPlaylistName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM playlists WHERE playlist_name = $1 AND deleted = FALSE)`,
		name).Scan(&exists)
	return exists, err
}

func (r *PlaylistRepository) Save(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Playlist{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if playlist.ID == 0 {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO playlists (user_id, playlist_name, creation_date, visibility, deleted)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			playlist.UserID, playlist.PlaylistName, playlist.CreationDate,
			playlist.Visibility, playlist.Deleted,
		).Scan(&playlist.ID)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE playlists SET playlist_name = $1, creation_date = $2, visibility = $3, deleted = $4 WHERE id = $5`,
			playlist.PlaylistName, playlist.CreationDate, playlist.Visibility,
			playlist.Deleted, playlist.ID)
	}
	if err != nil {
		return model.Playlist{}, err
	}
	if err = tx.Commit(); err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}
