package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"mytube-channels/domain/repository"
	"mytube-channels/infrastructure/configuration"
)

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "channel_7", repository.ChannelCacheKey(7))
	assert.Equal(t, "playlist_7", repository.PlaylistCacheKey(7))
	assert.Equal(t, "playlist_video_7", repository.PlaylistVideoCacheKey(7))
	assert.Equal(t, "channels::channel_7", repository.RegionChannels+repository.ChannelCacheKey(7))
}

func TestRegionTTL(t *testing.T) {
	assert.Equal(t, 20*time.Minute, regionTTL(0, 20*time.Minute))
	assert.Equal(t, 5*time.Minute, regionTTL(5, 20*time.Minute))
	assert.Equal(t, time.Duration(0), regionTTL(-1, 20*time.Minute))
}

func TestNewRegionCache_Defaults(t *testing.T) {
	c := NewRegionCache(nil, configuration.Cache{})

	assert.Equal(t, time.Duration(0), c.ttls[repository.RegionChannels])
	assert.Equal(t, 20*time.Minute, c.ttls[repository.RegionPlaylists])
	assert.Equal(t, 30*time.Minute, c.ttls[repository.RegionPlaylistVideos])
}

func TestRegionCache_Put_NilValue(t *testing.T) {
	c := NewRegionCache(nil, configuration.Cache{})

	err := c.Put(context.Background(), repository.RegionChannels, "channel_1", nil)
	assert.ErrorIs(t, err, errNilValue)
}
