package dto

import "time"

type PlaylistDTO struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	PlaylistName string    `json:"playlistName"`
	CreationDate time.Time `json:"creationDate"`
	Visibility   string    `json:"visibility"`
	Deleted      bool      `json:"deleted"`
}

type PlaylistResult struct {
	Playlists  []PlaylistDTO `json:"playlists"`
	TotalCount int64         `json:"totalCount"`
}
