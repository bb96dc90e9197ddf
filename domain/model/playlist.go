package model

import (
	"fmt"
	"time"
)

// PlaylistVisibility is stored as its canonical string form.
type PlaylistVisibility string

const (
	VisibilityPublic   PlaylistVisibility = "public"
	VisibilityPrivate  PlaylistVisibility = "private"
	VisibilityUnlisted PlaylistVisibility = "unlisted"
)

// ParsePlaylistVisibility validates a visibility value coming off the wire.
func ParsePlaylistVisibility(s string) (PlaylistVisibility, error) {
	switch PlaylistVisibility(s) {
	case VisibilityPublic, VisibilityPrivate, VisibilityUnlisted:
		return PlaylistVisibility(s), nil
	}
	return "", fmt.Errorf("unknown playlist visibility %q", s)
}

type Playlist struct {
	ID           int                `json:"id"`
	UserID       int                `json:"userId"`
	PlaylistName string             `json:"playlistName"`
	CreationDate time.Time          `json:"creationDate"`
	Visibility   PlaylistVisibility `json:"visibility"`
	Deleted      bool               `json:"deleted"`
}
