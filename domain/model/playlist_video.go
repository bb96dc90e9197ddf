package model

// PlaylistVideo links a video into a playlist. The association has no
// soft-delete marker; removal is physical.
type PlaylistVideo struct {
	ID         int `json:"id"`
	PlaylistID int `json:"playlistId"`
	VideoID    int `json:"videoId"`
}
