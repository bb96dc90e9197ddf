package model

import "time"

// Channel is the persisted channel row. Deleted marks a soft delete; the row
// stays retrievable by id but is excluded from default listings.
type Channel struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"userId"`
	ChannelName        string    `json:"channelName"`
	ChannelDescription string    `json:"channelDescription"`
	ChannelURL         string    `json:"channelUrl"`
	SubscribersCount   int       `json:"subscribersCount"`
	CreationDate       time.Time `json:"creationDate"`
	Deleted            bool      `json:"deleted"`
}
