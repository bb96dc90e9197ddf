package usecase_test

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stretchr/testify/mock"
	"mytube-channels/domain/model"
)

// Mock implementations

type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) GetByID(ctx context.Context, id int) (model.Channel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Channel), args.Error(1)
}

func (m *MockChannelRepository) FindAllByDeletedFalse(ctx context.Context, limit, offset int) ([]model.Channel, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]model.Channel), args.Get(1).(int64), args.Error(2)
}

func (m *MockChannelRepository) FindByDeletedFalse(ctx context.Context) ([]model.Channel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *MockChannelRepository) FindByChannelNameContaining(ctx context.Context, name string) ([]model.Channel, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *MockChannelRepository) FindAllOrderBySubscribersCountDesc(ctx context.Context) ([]model.Channel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *MockChannelRepository) FindByUserID(ctx context.Context, userID int) ([]model.Channel, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *MockChannelRepository) ExistsByChannelName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockChannelRepository) Save(ctx context.Context, channel model.Channel) (model.Channel, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(model.Channel), args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id int) (model.Playlist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) FindAllByDeletedFalse(ctx context.Context, limit, offset int) ([]model.Playlist, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]model.Playlist), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistRepository) ExistsByPlaylistName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) Save(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	args := m.Called(ctx, playlist)
	return args.Get(0).(model.Playlist), args.Error(1)
}

type MockPlaylistVideoRepository struct {
	mock.Mock
}

func (m *MockPlaylistVideoRepository) GetByID(ctx context.Context, id int) (model.PlaylistVideo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.PlaylistVideo), args.Error(1)
}

func (m *MockPlaylistVideoRepository) FindAll(ctx context.Context, limit, offset int) ([]model.PlaylistVideo, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]model.PlaylistVideo), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistVideoRepository) Save(ctx context.Context, pv model.PlaylistVideo) (model.PlaylistVideo, error) {
	args := m.Called(ctx, pv)
	return args.Get(0).(model.PlaylistVideo), args.Error(1)
}

func (m *MockPlaylistVideoRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id int) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

// fakeCache is an in-memory ICache so tests can observe the commit-then-cache
// sequence without Redis.
type fakeCache struct {
	entries map[string][]byte
	evicted []string
	putErr  error
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(ctx context.Context, region, key string, dest interface{}) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[region+key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Put(ctx context.Context, region, key string, value interface{}) error {
	if c.putErr != nil {
		return c.putErr
	}
	if value == nil {
		return errors.New("nil value")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[region+key] = raw
	return nil
}

func (c *fakeCache) Evict(ctx context.Context, region, key string) error {
	delete(c.entries, region+key)
	c.evicted = append(c.evicted, region+key)
	return nil
}

func (c *fakeCache) has(region, key string) bool {
	_, ok := c.entries[region+key]
	return ok
}
