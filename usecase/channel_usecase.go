package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mytube-channels/domain/apperror"
	"mytube-channels/domain/dto"
	"mytube-channels/domain/repository"
	"mytube-channels/infrastructure/logger"
)

// channelSaveTimeout bounds the independent transaction Channel.Save runs in,
// so a boundary write can never hang an enclosing operation.
const channelSaveTimeout = time.Second

type IChannelUsecase interface {
	GetByID(ctx context.Context, id int) (dto.ChannelDTO, error)
	Save(ctx context.Context, d dto.ChannelDTO) (dto.ChannelDTO, error)
	Update(ctx context.Context, id int, d dto.ChannelDTO) (dto.ChannelDTO, error)
	SoftDelete(ctx context.Context, id int) error
	GetAll(ctx context.Context, page, size int) (dto.ChannelResult, error)
	FindByChannelName(ctx context.Context, name string) ([]dto.ChannelDTO, error)
	FindAllOrderBySubscribersCountDesc(ctx context.Context) ([]dto.ChannelDTO, error)
	FindActiveChannels(ctx context.Context) ([]dto.ChannelDTO, error)
	FindByUserID(ctx context.Context, userID int) ([]dto.ChannelDTO, error)
}

// ChannelUsecase coordinates the channel store, the converter and the channel
// cache region. Cache writes always happen after the store commit and are
// best effort; the store is the source of truth.
type ChannelUsecase struct {
	channelRepo repository.IChannelRepository
	converter   *ChannelConverter
	cache       repository.ICache
}

func NewChannelUsecase(channelRepo repository.IChannelRepository, converter *ChannelConverter, cache repository.ICache) IChannelUsecase {
	return &ChannelUsecase{channelRepo: channelRepo, converter: converter, cache: cache}
}

// GetByID reads through the cache: hit returns immediately, miss loads the
// store and repopulates the entry. Soft-deleted channels stay retrievable.
func (u *ChannelUsecase) GetByID(ctx context.Context, id int) (dto.ChannelDTO, error) {
	key := repository.ChannelCacheKey(id)
	var cached dto.ChannelDTO
	hit, err := u.cache.Get(ctx, repository.RegionChannels, key, &cached)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Channel cache read failed")
	} else if hit {
		return cached, nil
	}

	domain, err := u.channelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dto.ChannelDTO{}, apperror.NewNotFound("channel not found", fmt.Sprintf("channel id %d", id))
		}
		return dto.ChannelDTO{}, apperror.NewDatabaseOperation("error fetching channel", err)
	}
	d := u.converter.DomainToDto(domain)
	u.putCache(ctx, d)
	return d, nil
}

// Save validates the name, resolves the owner and persists inside a fresh
// transaction bounded by channelSaveTimeout. The cache entry is written only
// after the commit succeeded.
func (u *ChannelUsecase) Save(ctx context.Context, d dto.ChannelDTO) (dto.ChannelDTO, error) {
	if err := u.validateChannelName(ctx, d.ChannelName); err != nil {
		return dto.ChannelDTO{}, err
	}
	domain, err := u.converter.DtoToDomain(ctx, d)
	if err != nil {
		return dto.ChannelDTO{}, err
	}
	domain.ID = 0

	saveCtx, cancel := context.WithTimeout(ctx, channelSaveTimeout)
	defer cancel()
	saved, err := u.channelRepo.Save(saveCtx, domain)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error saving channel")
		return dto.ChannelDTO{}, apperror.NewDatabaseOperation("error saving channel", err)
	}

	result := u.converter.DomainToDto(saved)
	u.putCache(ctx, result)
	return result, nil
}

// Update overwrites the description and, when changed, the name. URL and
// subscriber count are kept from the stored row so a stale client payload
// cannot clobber counters maintained elsewhere.
func (u *ChannelUsecase) Update(ctx context.Context, id int, d dto.ChannelDTO) (dto.ChannelDTO, error) {
	domain, err := u.channelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dto.ChannelDTO{}, apperror.NewNotFound("channel not found", fmt.Sprintf("channel id %d", id))
		}
		return dto.ChannelDTO{}, apperror.NewDatabaseOperation("error fetching channel", err)
	}

	if domain.ChannelName != d.ChannelName {
		if err := u.validateChannelName(ctx, d.ChannelName); err != nil {
			return dto.ChannelDTO{}, err
		}
		domain.ChannelName = d.ChannelName
	}
	domain.ChannelDescription = d.ChannelDescription

	saved, err := u.channelRepo.Save(ctx, domain)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error updating channel")
		return dto.ChannelDTO{}, apperror.NewDatabaseOperation("error updating channel", err)
	}

	result := u.converter.DomainToDto(saved)
	u.putCache(ctx, result)
	return result, nil
}

// SoftDelete marks the channel deleted and evicts its cache entry. Repeating
// the call on an already deleted channel is a no-op mutation, not an error.
func (u *ChannelUsecase) SoftDelete(ctx context.Context, id int) error {
	domain, err := u.channelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFound("channel not found", fmt.Sprintf("channel id %d", id))
		}
		return apperror.NewDatabaseOperation("error fetching channel", err)
	}

	domain.Deleted = true
	if _, err := u.channelRepo.Save(ctx, domain); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error soft-deleting channel")
		return apperror.NewDatabaseOperation("error soft-deleting channel", err)
	}
	if err := u.cache.Evict(ctx, repository.RegionChannels, repository.ChannelCacheKey(id)); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Channel cache evict failed")
	}
	return nil
}

// GetAll lists one page of non-deleted channels and warms the point-lookup
// cache for every item returned.
func (u *ChannelUsecase) GetAll(ctx context.Context, page, size int) (dto.ChannelResult, error) {
	domains, total, err := u.channelRepo.FindAllByDeletedFalse(ctx, size, page*size)
	if err != nil {
		return dto.ChannelResult{}, apperror.NewDatabaseOperation("error listing channels", err)
	}
	channels := u.converter.DomainListToDtoList(domains)
	for _, ch := range channels {
		u.putCache(ctx, ch)
	}
	return dto.ChannelResult{Channels: channels, TotalCount: total}, nil
}

func (u *ChannelUsecase) FindByChannelName(ctx context.Context, name string) ([]dto.ChannelDTO, error) {
	domains, err := u.channelRepo.FindByChannelNameContaining(ctx, name)
	if err != nil {
		return nil, apperror.NewDatabaseOperation("error searching channels", err)
	}
	return u.converter.DomainListToDtoList(domains), nil
}

func (u *ChannelUsecase) FindAllOrderBySubscribersCountDesc(ctx context.Context) ([]dto.ChannelDTO, error) {
	domains, err := u.channelRepo.FindAllOrderBySubscribersCountDesc(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseOperation("error listing channels by subscribers", err)
	}
	return u.converter.DomainListToDtoList(domains), nil
}

func (u *ChannelUsecase) FindActiveChannels(ctx context.Context) ([]dto.ChannelDTO, error) {
	domains, err := u.channelRepo.FindByDeletedFalse(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseOperation("error listing active channels", err)
	}
	return u.converter.DomainListToDtoList(domains), nil
}

func (u *ChannelUsecase) FindByUserID(ctx context.Context, userID int) ([]dto.ChannelDTO, error) {
	domains, err := u.channelRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NewDatabaseOperation("error listing channels by user", err)
	}
	if len(domains) == 0 {
		return nil, apperror.NewNotFound("no channels for user", fmt.Sprintf("user id %d", userID))
	}
	return u.converter.DomainListToDtoList(domains), nil
}

func (u *ChannelUsecase) validateChannelName(ctx context.Context, name string) error {
	if name == "" {
		return apperror.NewInvalidInput("channel name must not be empty", "")
	}
	exists, err := u.channelRepo.ExistsByChannelName(ctx, name)
	if err != nil {
		return apperror.NewDatabaseOperation("error checking channel name", err)
	}
	if exists {
		return apperror.NewConflict("channel name already in use", name)
	}
	return nil
}

func (u *ChannelUsecase) putCache(ctx context.Context, d dto.ChannelDTO) {
	if err := u.cache.Put(ctx, repository.RegionChannels, repository.ChannelCacheKey(d.ID), d); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Channel cache write failed")
	}
}
