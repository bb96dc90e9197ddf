package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mytube-channels/domain/apperror"
	"mytube-channels/domain/dto"
	"mytube-channels/domain/model"
	"mytube-channels/domain/repository"
	"mytube-channels/infrastructure/logger"
)

type IPlaylistUsecase interface {
	GetByID(ctx context.Context, id int) (dto.PlaylistDTO, error)
	Save(ctx context.Context, d dto.PlaylistDTO) (dto.PlaylistDTO, error)
	Update(ctx context.Context, id int, d dto.PlaylistDTO) (dto.PlaylistDTO, error)
	SoftDelete(ctx context.Context, id int) error
	GetAll(ctx context.Context, page, size int) (dto.PlaylistResult, error)
}

// PlaylistUsecase coordinates playlists the same way ChannelUsecase does
// channels, with two deliberate differences: Save rejects any duplicate name
// outright, and Update fully overwrites name, creation date and visibility
// from the incoming payload.
type PlaylistUsecase struct {
	playlistRepo repository.IPlaylistRepository
	converter    *PlaylistConverter
	cache        repository.ICache
}

func NewPlaylistUsecase(playlistRepo repository.IPlaylistRepository, converter *PlaylistConverter, cache repository.ICache) IPlaylistUsecase {
	return &PlaylistUsecase{playlistRepo: playlistRepo, converter: converter, cache: cache}
}

func (u *PlaylistUsecase) GetByID(ctx context.Context, id int) (dto.PlaylistDTO, error) {
	key := repository.PlaylistCacheKey(id)
	var cached dto.PlaylistDTO
	hit, err := u.cache.Get(ctx, repository.RegionPlaylists, key, &cached)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Playlist cache read failed")
	} else if hit {
		return cached, nil
	}

	domain, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dto.PlaylistDTO{}, apperror.NewNotFound("playlist not found", fmt.Sprintf("playlist id %d", id))
		}
		return dto.PlaylistDTO{}, apperror.NewDatabaseOperation("error fetching playlist", err)
	}
	d := u.converter.DomainToDto(domain)
	u.putCache(ctx, d)
	return d, nil
}

func (u *PlaylistUsecase) Save(ctx context.Context, d dto.PlaylistDTO) (dto.PlaylistDTO, error) {
	if d.PlaylistName == "" {
		return dto.PlaylistDTO{}, apperror.NewInvalidInput("playlist name must not be empty", "")
	}
	exists, err := u.playlistRepo.ExistsByPlaylistName(ctx, d.PlaylistName)
	if err != nil {
		return dto.PlaylistDTO{}, apperror.NewDatabaseOperation("error checking playlist name", err)
	}
	if exists {
		return dto.PlaylistDTO{}, apperror.NewConflict("playlist name already in use", d.PlaylistName)
	}

	domain, err := u.converter.DtoToDomain(ctx, d)
	if err != nil {
		return dto.PlaylistDTO{}, err
	}
	domain.ID = 0

	saved, err := u.playlistRepo.Save(ctx, domain)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error saving playlist")
		return dto.PlaylistDTO{}, apperror.NewDatabaseOperation("error saving playlist", err)
	}

	result := u.converter.DomainToDto(saved)
	u.putCache(ctx, result)
	return result, nil
}

// Update replaces name, creation date and visibility wholesale. Unlike
// Channel.Update there is no field-preservation policy here.
func (u *PlaylistUsecase) Update(ctx context.Context, id int, d dto.PlaylistDTO) (dto.PlaylistDTO, error) {
	domain, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dto.PlaylistDTO{}, apperror.NewNotFound("playlist not found", fmt.Sprintf("playlist id %d", id))
		}
		return dto.PlaylistDTO{}, apperror.NewDatabaseOperation("error fetching playlist", err)
	}

	if d.PlaylistName == "" {
		return dto.PlaylistDTO{}, apperror.NewInvalidInput("playlist name must not be empty", "")
	}
	visibility, err := model.ParsePlaylistVisibility(d.Visibility)
	if err != nil {
		return dto.PlaylistDTO{}, apperror.NewInvalidInput("invalid playlist visibility", d.Visibility)
	}

	domain.PlaylistName = d.PlaylistName
	domain.CreationDate = d.CreationDate
	domain.Visibility = visibility

	saved, err := u.playlistRepo.Save(ctx, domain)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error updating playlist")
		return dto.PlaylistDTO{}, apperror.NewDatabaseOperation("error updating playlist", err)
	}

	result := u.converter.DomainToDto(saved)
	u.putCache(ctx, result)
	return result, nil
}

func (u *PlaylistUsecase) SoftDelete(ctx context.Context, id int) error {
	domain, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFound("playlist not found", fmt.Sprintf("playlist id %d", id))
		}
		return apperror.NewDatabaseOperation("error fetching playlist", err)
	}

	domain.Deleted = true
	if _, err := u.playlistRepo.Save(ctx, domain); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error soft-deleting playlist")
		return apperror.NewDatabaseOperation("error soft-deleting playlist", err)
	}
	if err := u.cache.Evict(ctx, repository.RegionPlaylists, repository.PlaylistCacheKey(id)); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Playlist cache evict failed")
	}
	return nil
}

func (u *PlaylistUsecase) GetAll(ctx context.Context, page, size int) (dto.PlaylistResult, error) {
	domains, total, err := u.playlistRepo.FindAllByDeletedFalse(ctx, size, page*size)
	if err != nil {
		return dto.PlaylistResult{}, apperror.NewDatabaseOperation("error listing playlists", err)
	}
	playlists := u.converter.DomainListToDtoList(domains)
	for _, pl := range playlists {
		u.putCache(ctx, pl)
	}
	return dto.PlaylistResult{Playlists: playlists, TotalCount: total}, nil
}

func (u *PlaylistUsecase) putCache(ctx context.Context, d dto.PlaylistDTO) {
	if err := u.cache.Put(ctx, repository.RegionPlaylists, repository.PlaylistCacheKey(d.ID), d); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Playlist cache write failed")
	}
}
