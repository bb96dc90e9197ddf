package repository

import (
	"context"

	"mytube-channels/domain/model"
)

// IVideoRepository resolves playlist-video references. Videos are managed elsewhere.
type IVideoRepository interface {
	GetByID(ctx context.Context, id int) (model.Video, error)
}
