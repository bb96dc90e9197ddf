package repository

import (
	"context"
	"fmt"
)

// Cache region names double as key prefixes in the backing store and must
// stay stable across restarts.
const (
	RegionChannels       = "channels::"
	RegionPlaylists      = "playlists::"
	RegionPlaylistVideos = "playlistVideos::"
)

func ChannelCacheKey(id int) string       { return fmt.Sprintf("channel_%d", id) }
func PlaylistCacheKey(id int) string      { return fmt.Sprintf("playlist_%d", id) }
func PlaylistVideoCacheKey(id int) string { return fmt.Sprintf("playlist_video_%d", id) }

// ICache is a region-scoped cache. Entries are derived copies of store rows,
// never authoritative; callers treat every method as best effort.
type ICache interface {
	// Get unmarshals the cached entry into dest and reports whether the key
	// was present. An absent key is not an error.
	Get(ctx context.Context, region, key string, dest interface{}) (bool, error)
	// Put overwrites any existing entry unconditionally. Nil values are
	// rejected by implementations.
	Put(ctx context.Context, region, key string, value interface{}) error
	Evict(ctx context.Context, region, key string) error
}
