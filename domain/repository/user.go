package repository

import (
	"context"

	"mytube-channels/domain/model"
)

// IUserRepository resolves channel/playlist owners. Users are managed elsewhere.
type IUserRepository interface {
	GetByID(ctx context.Context, id int) (model.User, error)
}
