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
	"mytube-channels/infrastructure/utils"
)

type PlaylistConverter struct {
	userRepo repository.IUserRepository
}

func NewPlaylistConverter(userRepo repository.IUserRepository) *PlaylistConverter {
	return &PlaylistConverter{userRepo: userRepo}
}

func (c *PlaylistConverter) DomainToDto(domain model.Playlist) dto.PlaylistDTO {
	return dto.PlaylistDTO{
		ID:           domain.ID,
		UserID:       domain.UserID,
		PlaylistName: domain.PlaylistName,
		CreationDate: domain.CreationDate,
		Visibility:   string(domain.Visibility),
		Deleted:      domain.Deleted,
	}
}

func (c *PlaylistConverter) DtoToDomain(ctx context.Context, d dto.PlaylistDTO) (model.Playlist, error) {
	user, err := c.userRepo.GetByID(ctx, d.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Playlist{}, apperror.NewNotFound("user not found", fmt.Sprintf("user id %d", d.UserID))
		}
		return model.Playlist{}, apperror.NewDatabaseOperation("error resolving playlist owner", err)
	}

	visibility, err := model.ParsePlaylistVisibility(d.Visibility)
	if err != nil {
		return model.Playlist{}, apperror.NewInvalidInput("invalid playlist visibility", d.Visibility)
	}

	creationDate := d.CreationDate
	if creationDate.IsZero() {
		creationDate = utils.GetCurrentTime()
	}
	return model.Playlist{
		ID:           d.ID,
		UserID:       user.ID,
		PlaylistName: d.PlaylistName,
		CreationDate: creationDate,
		Visibility:   visibility,
		Deleted:      false,
	}, nil
}

func (c *PlaylistConverter) DomainListToDtoList(domains []model.Playlist) []dto.PlaylistDTO {
	dtos := make([]dto.PlaylistDTO, 0, len(domains))
	for _, domain := range domains {
		dtos = append(dtos, c.DomainToDto(domain))
	}
	return dtos
}
