package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mytube-channels/domain/apperror"
	"mytube-channels/domain/dto"
	"mytube-channels/domain/repository"
	"mytube-channels/infrastructure/logger"
)

type IPlaylistVideoUsecase interface {
	GetByID(ctx context.Context, id int) (dto.PlaylistVideoDTO, error)
	Save(ctx context.Context, d dto.PlaylistVideoDTO) (dto.PlaylistVideoDTO, error)
	// Update returns (nil, nil) when the association or either reference does
	// not resolve; the caller decides how to surface "nothing to update".
	Update(ctx context.Context, id int, d dto.PlaylistVideoDTO) (*dto.PlaylistVideoDTO, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context, page, size int) (dto.PlaylistVideoResult, error)
}

// PlaylistVideoUsecase manages playlist-video associations. There is no
// soft-delete here; removal is physical.
type PlaylistVideoUsecase struct {
	playlistVideoRepo repository.IPlaylistVideoRepository
	converter         *PlaylistVideoConverter
	cache             repository.ICache
}

func NewPlaylistVideoUsecase(playlistVideoRepo repository.IPlaylistVideoRepository, converter *PlaylistVideoConverter, cache repository.ICache) IPlaylistVideoUsecase {
	return &PlaylistVideoUsecase{playlistVideoRepo: playlistVideoRepo, converter: converter, cache: cache}
}

func (u *PlaylistVideoUsecase) GetByID(ctx context.Context, id int) (dto.PlaylistVideoDTO, error) {
	key := repository.PlaylistVideoCacheKey(id)
	var cached dto.PlaylistVideoDTO
	hit, err := u.cache.Get(ctx, repository.RegionPlaylistVideos, key, &cached)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("PlaylistVideo cache read failed")
	} else if hit {
		return cached, nil
	}

	domain, err := u.playlistVideoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dto.PlaylistVideoDTO{}, apperror.NewNotFound("playlist video not found", fmt.Sprintf("playlist video id %d", id))
		}
		return dto.PlaylistVideoDTO{}, apperror.NewDatabaseOperation("error fetching playlist video", err)
	}
	d := u.converter.DomainToDto(domain)
	u.putCache(ctx, d)
	return d, nil
}

// Save strictly validates both references before any store write: a missing
// playlist or video fails with NotFound and nothing is persisted.
func (u *PlaylistVideoUsecase) Save(ctx context.Context, d dto.PlaylistVideoDTO) (dto.PlaylistVideoDTO, error) {
	if d.PlaylistID == nil || d.VideoID == nil {
		return dto.PlaylistVideoDTO{}, apperror.NewInvalidInput("playlist id and video id are required", "")
	}
	domain, err := u.converter.DtoToDomain(ctx, d)
	if err != nil {
		return dto.PlaylistVideoDTO{}, err
	}
	domain.ID = 0

	saved, err := u.playlistVideoRepo.Save(ctx, domain)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error saving playlist video")
		return dto.PlaylistVideoDTO{}, apperror.NewDatabaseOperation("error saving playlist video", err)
	}

	result := u.converter.DomainToDto(saved)
	u.putCache(ctx, result)
	return result, nil
}

// Update is deliberately permissive: an unknown association id or an
// unresolvable reference yields an absent result instead of an error.
func (u *PlaylistVideoUsecase) Update(ctx context.Context, id int, d dto.PlaylistVideoDTO) (*dto.PlaylistVideoDTO, error) {
	domain, err := u.playlistVideoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.GetLogger().WithField("id", id).Warn("Playlist video not found for update")
			return nil, nil
		}
		return nil, apperror.NewDatabaseOperation("error fetching playlist video", err)
	}
	if d.PlaylistID == nil || d.VideoID == nil {
		return nil, nil
	}

	playlist, err := u.converter.ResolvePlaylist(ctx, *d.PlaylistID)
	if err != nil {
		if apperror.IsNotFound(err) {
			logger.GetLogger().WithField("playlistId", *d.PlaylistID).Warn("Playlist not found for update")
			return nil, nil
		}
		return nil, err
	}
	video, err := u.converter.ResolveVideo(ctx, *d.VideoID)
	if err != nil {
		if apperror.IsNotFound(err) {
			logger.GetLogger().WithField("videoId", *d.VideoID).Warn("Video not found for update")
			return nil, nil
		}
		return nil, err
	}

	domain.PlaylistID = playlist.ID
	domain.VideoID = video.ID
	saved, err := u.playlistVideoRepo.Save(ctx, domain)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error updating playlist video")
		return nil, apperror.NewDatabaseOperation("error updating playlist video", err)
	}

	result := u.converter.DomainToDto(saved)
	u.putCache(ctx, result)
	return &result, nil
}

func (u *PlaylistVideoUsecase) Delete(ctx context.Context, id int) error {
	if _, err := u.playlistVideoRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFound("playlist video not found", fmt.Sprintf("playlist video id %d", id))
		}
		return apperror.NewDatabaseOperation("error fetching playlist video", err)
	}
	if err := u.playlistVideoRepo.Delete(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error deleting playlist video")
		return apperror.NewDatabaseOperation("error deleting playlist video", err)
	}
	if err := u.cache.Evict(ctx, repository.RegionPlaylistVideos, repository.PlaylistVideoCacheKey(id)); err != nil {
		logger.GetLogger().WithField("error", err).Warn("PlaylistVideo cache evict failed")
	}
	return nil
}

func (u *PlaylistVideoUsecase) GetAll(ctx context.Context, page, size int) (dto.PlaylistVideoResult, error) {
	domains, total, err := u.playlistVideoRepo.FindAll(ctx, size, page*size)
	if err != nil {
		return dto.PlaylistVideoResult{}, apperror.NewDatabaseOperation("error listing playlist videos", err)
	}
	playlistVideos := u.converter.DomainListToDtoList(domains)
	for _, pv := range playlistVideos {
		u.putCache(ctx, pv)
	}
	return dto.PlaylistVideoResult{PlaylistVideos: playlistVideos, TotalCount: total}, nil
}

func (u *PlaylistVideoUsecase) putCache(ctx context.Context, d dto.PlaylistVideoDTO) {
	if err := u.cache.Put(ctx, repository.RegionPlaylistVideos, repository.PlaylistVideoCacheKey(d.ID), d); err != nil {
		logger.GetLogger().WithField("error", err).Warn("PlaylistVideo cache write failed")
	}
}
