package repository

import (
	"context"

	"mytube-channels/domain/model"
)

// IChannelRepository is the durable store for channels. Lookups for ids that
// do not exist return sql.ErrNoRows.
type IChannelRepository interface {
	GetByID(ctx context.Context, id int) (model.Channel, error)
	// FindAllByDeletedFalse returns one page of non-deleted channels plus the
	// total non-deleted count.
	FindAllByDeletedFalse(ctx context.Context, limit, offset int) ([]model.Channel, int64, error)
	FindByDeletedFalse(ctx context.Context) ([]model.Channel, error)
	FindByChannelNameContaining(ctx context.Context, name string) ([]model.Channel, error)
	FindAllOrderBySubscribersCountDesc(ctx context.Context) ([]model.Channel, error)
	FindByUserID(ctx context.Context, userID int) ([]model.Channel, error)
	// ExistsByChannelName reports whether a non-deleted channel already uses
	// the given name.
	ExistsByChannelName(ctx context.Context, name string) (bool, error)
	// Save inserts when ID is zero and updates otherwise, inside its own
	// transaction. The returned channel carries the store-assigned id.
	Save(ctx context.Context, channel model.Channel) (model.Channel, error)
}
