package repository

import (
	"context"

	"mytube-channels/domain/model"
)

type IPlaylistRepository interface {
	GetByID(ctx context.Context, id int) (model.Playlist, error)
	FindAllByDeletedFalse(ctx context.Context, limit, offset int) ([]model.Playlist, int64, error)
	ExistsByPlaylistName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, playlist model.Playlist) (model.Playlist, error)
}
