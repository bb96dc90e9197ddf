package dto

import "time"

// ChannelDTO is the wire representation of a channel. URL and subscriber
// count are accepted on create but ignored on update (see ChannelUsecase).
type ChannelDTO struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"userId"`
	ChannelName        string    `json:"channelName"`
	ChannelDescription string    `json:"channelDescription"`
	ChannelURL         string    `json:"channelUrl"`
	SubscribersCount   int       `json:"subscribersCount"`
	CreationDate       time.Time `json:"creationDate"`
	Deleted            bool      `json:"deleted"`
}

type ChannelResult struct {
	Channels   []ChannelDTO `json:"channels"`
	TotalCount int64        `json:"totalCount"`
}
