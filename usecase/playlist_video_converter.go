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
)

// PlaylistVideoConverter resolves both sides of the association. The strict
// resolution path raises NotFound; Update uses the Resolve helpers directly to
// implement its permissive variant.
type PlaylistVideoConverter struct {
	playlistRepo repository.IPlaylistRepository
	videoRepo    repository.IVideoRepository
}

func NewPlaylistVideoConverter(playlistRepo repository.IPlaylistRepository, videoRepo repository.IVideoRepository) *PlaylistVideoConverter {
	return &PlaylistVideoConverter{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

func (c *PlaylistVideoConverter) DomainToDto(domain model.PlaylistVideo) dto.PlaylistVideoDTO {
	playlistID := domain.PlaylistID
	videoID := domain.VideoID
	return dto.PlaylistVideoDTO{
		ID:         domain.ID,
		PlaylistID: &playlistID,
		VideoID:    &videoID,
	}
}

func (c *PlaylistVideoConverter) DtoToDomain(ctx context.Context, d dto.PlaylistVideoDTO) (model.PlaylistVideo, error) {
	playlist, err := c.ResolvePlaylist(ctx, *d.PlaylistID)
	if err != nil {
		return model.PlaylistVideo{}, err
	}
	video, err := c.ResolveVideo(ctx, *d.VideoID)
	if err != nil {
		return model.PlaylistVideo{}, err
	}
	return model.PlaylistVideo{
		ID:         d.ID,
		PlaylistID: playlist.ID,
		VideoID:    video.ID,
	}, nil
}

func (c *PlaylistVideoConverter) ResolvePlaylist(ctx context.Context, id int) (model.Playlist, error) {
	playlist, err := c.playlistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Playlist{}, apperror.NewNotFound("playlist not found", fmt.Sprintf("playlist id %d", id))
		}
		return model.Playlist{}, apperror.NewDatabaseOperation("error resolving playlist", err)
	}
	return playlist, nil
}

func (c *PlaylistVideoConverter) ResolveVideo(ctx context.Context, id int) (model.Video, error) {
	video, err := c.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Video{}, apperror.NewNotFound("video not found", fmt.Sprintf("video id %d", id))
		}
		return model.Video{}, apperror.NewDatabaseOperation("error resolving video", err)
	}
	return video, nil
}

func (c *PlaylistVideoConverter) DomainListToDtoList(domains []model.PlaylistVideo) []dto.PlaylistVideoDTO {
	dtos := make([]dto.PlaylistVideoDTO, 0, len(domains))
	for _, domain := range domains {
		dtos = append(dtos, c.DomainToDto(domain))
	}
	return dtos
}
