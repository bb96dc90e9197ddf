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

// ChannelConverter maps channels between wire and persisted form, resolving
// the owning user on the way in.
type ChannelConverter struct {
	userRepo repository.IUserRepository
}

func NewChannelConverter(userRepo repository.IUserRepository) *ChannelConverter {
	return &ChannelConverter{userRepo: userRepo}
}

func (c *ChannelConverter) DomainToDto(domain model.Channel) dto.ChannelDTO {
	return dto.ChannelDTO{
		ID:                 domain.ID,
		UserID:             domain.UserID,
		ChannelName:        domain.ChannelName,
		ChannelDescription: domain.ChannelDescription,
		ChannelURL:         domain.ChannelURL,
		SubscribersCount:   domain.SubscribersCount,
		CreationDate:       domain.CreationDate,
		Deleted:            domain.Deleted,
	}
}

// DtoToDomain fails fast when the owning user does not exist. New rows always
// start with deleted=false.
func (c *ChannelConverter) DtoToDomain(ctx context.Context, d dto.ChannelDTO) (model.Channel, error) {
	user, err := c.userRepo.GetByID(ctx, d.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Channel{}, apperror.NewNotFound("user not found", fmt.Sprintf("user id %d", d.UserID))
		}
		return model.Channel{}, apperror.NewDatabaseOperation("error resolving channel owner", err)
	}

	creationDate := d.CreationDate
	if creationDate.IsZero() {
		creationDate = utils.GetCurrentTime()
	}
	return model.Channel{
		ID:                 d.ID,
		UserID:             user.ID,
		ChannelName:        d.ChannelName,
		ChannelDescription: d.ChannelDescription,
		ChannelURL:         d.ChannelURL,
		SubscribersCount:   d.SubscribersCount,
		CreationDate:       creationDate,
		Deleted:            false,
	}, nil
}

func (c *ChannelConverter) DomainListToDtoList(domains []model.Channel) []dto.ChannelDTO {
	dtos := make([]dto.ChannelDTO, 0, len(domains))
	for _, domain := range domains {
		dtos = append(dtos, c.DomainToDto(domain))
	}
	return dtos
}
