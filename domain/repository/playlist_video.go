package repository

import (
	"context"

	"mytube-channels/domain/model"
)

type IPlaylistVideoRepository interface {
	GetByID(ctx context.Context, id int) (model.PlaylistVideo, error)
	// FindAll returns one page of associations plus the total count. There is
	// no deleted filter; the entity only supports physical removal.
	FindAll(ctx context.Context, limit, offset int) ([]model.PlaylistVideo, int64, error)
	Save(ctx context.Context, pv model.PlaylistVideo) (model.PlaylistVideo, error)
	Delete(ctx context.Context, id int) error
}
