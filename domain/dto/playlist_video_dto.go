package dto

// PlaylistVideoDTO uses pointers for its references so a missing id can be
// told apart from id zero when validating input.
type PlaylistVideoDTO struct {
	ID         int  `json:"id"`
	PlaylistID *int `json:"playlistId"`
	VideoID    *int `json:"videoId"`
}

type PlaylistVideoResult struct {
	PlaylistVideos []PlaylistVideoDTO `json:"playlistVideos"`
	TotalCount     int64              `json:"totalCount"`
}
