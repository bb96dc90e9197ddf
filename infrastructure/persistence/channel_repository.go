package persistence

import (
	"context"
	"database/sql"

	"mytube-channels/domain/model"
	"mytube-channels/domain/repository"
)

const channelColumns = "id, user_id, channel_name, channel_description, channel_url, subscribers_count, creation_date, deleted"

// ChannelRepository implements channel persistence on PostgreSQL.
type ChannelRepository struct {
	db *sql.DB
}

func NewChannelRepository(db *sql.DB) repository.IChannelRepository {
	return &ChannelRepository{db: db}
}

func scanChannel(row interface{ Scan(...interface{}) error }) (model.Channel, error) {
	var ch model.Channel
	err := row.Scan(&ch.ID, &ch.UserID, &ch.ChannelName, &ch.ChannelDescription,
		&ch.ChannelURL, &ch.SubscribersCount, &ch.CreationDate, &ch.Deleted)
	return ch, err
}

func (r *ChannelRepository) GetByID(ctx context.Context, id int) (model.Channel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE id = $1`, id)
	return scanChannel(row)
}

func (r *ChannelRepository) FindAllByDeletedFalse(ctx context.Context, limit, offset int) ([]model.Channel, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM channels WHERE deleted = FALSE`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE deleted = FALSE ORDER BY id ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	channels, err := collectChannels(rows)
	return channels, total, err
}

func (r *ChannelRepository) FindByDeletedFalse(ctx context.Context) ([]model.Channel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE deleted = FALSE ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectChannels(rows)
}

func (r *ChannelRepository) FindByChannelNameContaining(ctx context.Context, name string) ([]model.Channel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE channel_name LIKE '%' || $1 || '%' ORDER BY id ASC`,
		name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectChannels(rows)
}

func (r *ChannelRepository) FindAllOrderBySubscribersCountDesc(ctx context.Context) ([]model.Channel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM channels ORDER BY subscribers_count DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectChannels(rows)
}

func (r *ChannelRepository) FindByUserID(ctx context.Context, userID int) ([]model.Channel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE user_id = $1 ORDER BY id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectChannels(rows)
}

func (r *ChannelRepository) ExistsByChannelName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM channels WHERE channel_name = $1 AND deleted = FALSE)`,
		name).Scan(&exists)
	return exists, err
}

// Save runs in its own transaction so a failure here never rolls back work an
// enclosing operation may have in flight.
func (r *ChannelRepository) Save(ctx context.Context, channel model.Channel) (model.Channel, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Channel{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if channel.ID == 0 {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO channels (user_id, channel_name, channel_description, channel_url, subscribers_count, creation_date, deleted)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			channel.UserID, channel.ChannelName, channel.ChannelDescription,
			channel.ChannelURL, channel.SubscribersCount, channel.CreationDate, channel.Deleted,
		).Scan(&channel.ID)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE channels SET channel_name = $1, channel_description = $2, channel_url = $3, subscribers_count = $4, creation_date = $5, deleted = $6 WHERE id = $7`,
			channel.ChannelName, channel.ChannelDescription, channel.ChannelURL,
			channel.SubscribersCount, channel.CreationDate, channel.Deleted, channel.ID)
	}
	if err != nil {
		return model.Channel{}, err
	}
	if err = tx.Commit(); err != nil {
		return model.Channel{}, err
	}
	return channel, nil
}

func collectChannels(rows *sql.Rows) ([]model.Channel, error) {
	var channels []model.Channel
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}
