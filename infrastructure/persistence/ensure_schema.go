package persistence

import "database/sql"

// EnsureChannelsSchema creates the tables this service owns when they are
// missing. Users and videos are reference tables kept here for foreign keys;
// their rows are written by other services.
func EnsureChannelsSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			user_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS videos (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			upload_date TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS channels (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			channel_name TEXT NOT NULL,
			channel_description TEXT NOT NULL DEFAULT '',
			channel_url TEXT NOT NULL DEFAULT '',
			subscribers_count INTEGER NOT NULL DEFAULT 0,
			creation_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS playlists (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			playlist_name TEXT NOT NULL,
			creation_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			visibility TEXT NOT NULL DEFAULT 'private',
			deleted BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS playlist_videos (
			id SERIAL PRIMARY KEY,
			playlist_id INTEGER NOT NULL REFERENCES playlists(id),
			video_id INTEGER NOT NULL REFERENCES videos(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_channels_deleted ON channels(deleted)`,
		`CREATE INDEX IF NOT EXISTS idx_playlists_deleted ON playlists(deleted)`,
		`CREATE INDEX IF NOT EXISTS idx_playlist_videos_playlist ON playlist_videos(playlist_id)`,
	}
	for _, q := range stmts {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
