package usecase_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mytube-channels/domain/apperror"
	"mytube-channels/domain/dto"
	"mytube-channels/domain/model"
	"mytube-channels/domain/repository"
	"mytube-channels/usecase"
)

func newChannelUsecase(channelRepo *MockChannelRepository, userRepo *MockUserRepository, cache *fakeCache) usecase.IChannelUsecase {
	return usecase.NewChannelUsecase(channelRepo, usecase.NewChannelConverter(userRepo), cache)
}

func TestChannelUsecase_GetByID_NotFound(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	cache := newFakeCache()
	uc := newChannelUsecase(channelRepo, userRepo, cache)

	channelRepo.On("GetByID", mock.Anything, 99).Return(model.Channel{}, sql.ErrNoRows)

	_, err := uc.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.False(t, cache.has(repository.RegionChannels, repository.ChannelCacheKey(99)))
}

func TestChannelUsecase_Save_ThenGetByID_ServedFromCache(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	cache := newFakeCache()
	uc := newChannelUsecase(channelRepo, userRepo, cache)

	channelRepo.On("ExistsByChannelName", mock.Anything, "Tech").Return(false, nil)
	userRepo.On("GetByID", mock.Anything, 1).Return(model.User{ID: 1, Name: "Ana"}, nil)
	saved := model.Channel{
		ID:          1,
		UserID:      1,
		ChannelName: "Tech",
	}
	channelRepo.On("Save", mock.Anything, mock.MatchedBy(func(ch model.Channel) bool {
		return ch.ID == 0 && ch.ChannelName == "Tech" && !ch.Deleted
	})).Return(saved, nil)

	res, err := uc.Save(context.Background(), dto.ChannelDTO{UserID: 1, ChannelName: "Tech"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ID)
	assert.Equal(t, "Tech", res.ChannelName)

	// The follow-up read must be a cache hit: no GetByID expectation is set,
	// so a store read here would fail the test.
	got, err := uc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, res, got)
	channelRepo.AssertNotCalled(t, "GetByID", mock.Anything, 1)
}

func TestChannelUsecase_Save_CacheWriteFailureStillSucceeds(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	cache := newFakeCache()
	cache.putErr = assert.AnError
	uc := newChannelUsecase(channelRepo, userRepo, cache)

	channelRepo.On("ExistsByChannelName", mock.Anything, "Tech").Return(false, nil)
	userRepo.On("GetByID", mock.Anything, 1).Return(model.User{ID: 1, Name: "Ana"}, nil)
	channelRepo.On("Save", mock.Anything, mock.Anything).
		Return(model.Channel{ID: 1, UserID: 1, ChannelName: "Tech"}, nil)

	// The store write is the source of truth; a failing cache write after the
	// commit must not surface to the caller.
	res, err := uc.Save(context.Background(), dto.ChannelDTO{UserID: 1, ChannelName: "Tech"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ID)
	assert.False(t, cache.has(repository.RegionChannels, repository.ChannelCacheKey(1)))
}

func TestChannelUsecase_Update_CacheWriteFailureStillSucceeds(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	cache := newFakeCache()
	cache.putErr = assert.AnError
	uc := newChannelUsecase(channelRepo, userRepo, cache)

	stored := model.Channel{ID: 3, UserID: 1, ChannelName: "Tech"}
	updated := stored
	updated.ChannelDescription = "new description"
	channelRepo.On("GetByID", mock.Anything, 3).Return(stored, nil)
	channelRepo.On("Save", mock.Anything, mock.Anything).Return(updated, nil)

	res, err := uc.Update(context.Background(), 3, dto.ChannelDTO{
		ChannelName:        "Tech",
		ChannelDescription: "new description",
	})
	require.NoError(t, err)
	assert.Equal(t, "new description", res.ChannelDescription)
	assert.False(t, cache.has(repository.RegionChannels, repository.ChannelCacheKey(3)))
}

func TestChannelUsecase_Save_BoundsStoreWriteWithDeadline(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	uc := newChannelUsecase(channelRepo, userRepo, newFakeCache())

	channelRepo.On("ExistsByChannelName", mock.Anything, "Tech").Return(false, nil)
	userRepo.On("GetByID", mock.Anything, 1).Return(model.User{ID: 1, Name: "Ana"}, nil)
	// The caller's context carries no deadline; the repository must see one.
	channelRepo.On("Save", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(model.Channel{ID: 1, UserID: 1, ChannelName: "Tech"}, nil)

	_, err := uc.Save(context.Background(), dto.ChannelDTO{UserID: 1, ChannelName: "Tech"})
	require.NoError(t, err)
	channelRepo.AssertExpectations(t)
}

func TestChannelUsecase_Save_EmptyName(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	uc := newChannelUsecase(channelRepo, userRepo, newFakeCache())

	_, err := uc.Save(context.Background(), dto.ChannelDTO{UserID: 1})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidInput(err))
	channelRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChannelUsecase_Save_DuplicateName(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	uc := newChannelUsecase(channelRepo, userRepo, newFakeCache())

	channelRepo.On("ExistsByChannelName", mock.Anything, "Tech").Return(true, nil)

	_, err := uc.Save(context.Background(), dto.ChannelDTO{UserID: 2, ChannelName: "Tech"})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	channelRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChannelUsecase_Save_OwnerNotFound(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	uc := newChannelUsecase(channelRepo, userRepo, newFakeCache())

	channelRepo.On("ExistsByChannelName", mock.Anything, "Tech").Return(false, nil)
	userRepo.On("GetByID", mock.Anything, 7).Return(model.User{}, sql.ErrNoRows)

	_, err := uc.Save(context.Background(), dto.ChannelDTO{UserID: 7, ChannelName: "Tech"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	channelRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChannelUsecase_Update_PreservesURLAndSubscribers(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	cache := newFakeCache()
	uc := newChannelUsecase(channelRepo, userRepo, cache)

	stored := model.Channel{
		ID:                 3,
		UserID:             1,
		ChannelName:        "Tech",
		ChannelDescription: "old",
		ChannelURL:         "https://mytube/tech",
		SubscribersCount:   4200,
		CreationDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	updated := stored
	updated.ChannelDescription = "new description"
	channelRepo.On("GetByID", mock.Anything, 3).Return(stored, nil)
	channelRepo.On("Save", mock.Anything, mock.MatchedBy(func(ch model.Channel) bool {
		return ch.ID == 3 &&
			ch.ChannelName == "Tech" &&
			ch.ChannelDescription == "new description" &&
			ch.ChannelURL == "https://mytube/tech" &&
			ch.SubscribersCount == 4200
	})).Return(updated, nil)

	res, err := uc.Update(context.Background(), 3, dto.ChannelDTO{
		ChannelName:        "Tech",
		ChannelDescription: "new description",
		ChannelURL:         "https://stale/url",
		SubscribersCount:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://mytube/tech", res.ChannelURL)
	assert.Equal(t, 4200, res.SubscribersCount)
	// Name unchanged, so uniqueness is not re-checked.
	channelRepo.AssertNotCalled(t, "ExistsByChannelName", mock.Anything, mock.Anything)
	assert.True(t, cache.has(repository.RegionChannels, repository.ChannelCacheKey(3)))
}

func TestChannelUsecase_Update_NameChangeRevalidates(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	uc := newChannelUsecase(channelRepo, userRepo, newFakeCache())

	stored := model.Channel{ID: 3, UserID: 1, ChannelName: "Tech"}
	channelRepo.On("GetByID", mock.Anything, 3).Return(stored, nil)
	channelRepo.On("ExistsByChannelName", mock.Anything, "Gaming").Return(true, nil)

	_, err := uc.Update(context.Background(), 3, dto.ChannelDTO{ChannelName: "Gaming"})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	channelRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChannelUsecase_SoftDelete_Idempotent(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	cache := newFakeCache()
	uc := newChannelUsecase(channelRepo, userRepo, cache)

	active := model.Channel{ID: 5, UserID: 1, ChannelName: "Tech"}
	deleted := active
	deleted.Deleted = true

	channelRepo.On("GetByID", mock.Anything, 5).Return(active, nil).Once()
	channelRepo.On("GetByID", mock.Anything, 5).Return(deleted, nil)
	channelRepo.On("Save", mock.Anything, mock.MatchedBy(func(ch model.Channel) bool {
		return ch.ID == 5 && ch.Deleted
	})).Return(deleted, nil)

	require.NoError(t, uc.SoftDelete(context.Background(), 5))
	require.NoError(t, uc.SoftDelete(context.Background(), 5))
	assert.Contains(t, cache.evicted, repository.RegionChannels+repository.ChannelCacheKey(5))

	// Read-through after delete repopulates the cache with the deleted state.
	got, err := uc.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.True(t, cache.has(repository.RegionChannels, repository.ChannelCacheKey(5)))
}

func TestChannelUsecase_GetAll_WarmsCache(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	cache := newFakeCache()
	uc := newChannelUsecase(channelRepo, userRepo, cache)

	channels := []model.Channel{
		{ID: 1, UserID: 1, ChannelName: "Tech"},
		{ID: 2, UserID: 1, ChannelName: "Gaming"},
	}
	channelRepo.On("FindAllByDeletedFalse", mock.Anything, 10, 0).Return(channels, int64(2), nil)

	res, err := uc.GetAll(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, res.Channels, 2)
	assert.Equal(t, int64(2), res.TotalCount)
	assert.True(t, cache.has(repository.RegionChannels, repository.ChannelCacheKey(1)))
	assert.True(t, cache.has(repository.RegionChannels, repository.ChannelCacheKey(2)))
}

func TestChannelUsecase_GetByID_CacheFailureFallsThrough(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	cache := newFakeCache()
	cache.getErr = assert.AnError
	uc := newChannelUsecase(channelRepo, userRepo, cache)

	channelRepo.On("GetByID", mock.Anything, 1).Return(model.Channel{ID: 1, UserID: 1, ChannelName: "Tech"}, nil)

	got, err := uc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Tech", got.ChannelName)
}

func TestChannelUsecase_FindByUserID_Empty(t *testing.T) {
	channelRepo := new(MockChannelRepository)
	userRepo := new(MockUserRepository)
	uc := newChannelUsecase(channelRepo, userRepo, newFakeCache())

	channelRepo.On("FindByUserID", mock.Anything, 9).Return([]model.Channel{}, nil)

	_, err := uc.FindByUserID(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
