package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mytube-channels/domain/repository"
	"mytube-channels/infrastructure/configuration"

	"github.com/redis/go-redis/v9"
)

var errNilValue = errors.New("cache: nil values are not cached")

// RegionCache implements repository.ICache on Redis. Each region carries its
// own key prefix and expiry policy; values are stored as JSON.
type RegionCache struct {
	client *redis.Client
	ttls   map[string]time.Duration
}

// NewRegionCache wires the three entity regions with the configured TTLs.
// A zero TTL keeps entries until they are evicted or overwritten.
func NewRegionCache(client *redis.Client, cfg configuration.Cache) *RegionCache {
	return &RegionCache{
		client: client,
		ttls: map[string]time.Duration{
			repository.RegionChannels:       regionTTL(cfg.ChannelTTLMinutes, 0),
			repository.RegionPlaylists:      regionTTL(cfg.PlaylistTTLMinutes, 20*time.Minute),
			repository.RegionPlaylistVideos: regionTTL(cfg.PlaylistVideoTTLMinutes, 30*time.Minute),
		},
	}
}

func regionTTL(minutes int, fallback time.Duration) time.Duration {
	switch {
	case minutes < 0:
		return 0
	case minutes == 0:
		return fallback
	default:
		return time.Duration(minutes) * time.Minute
	}
}

func (c *RegionCache) Get(ctx context.Context, region, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, region+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Undecodable entries are dropped so the next read goes through the store.
		_ = c.client.Del(ctx, region+key).Err()
		return false, err
	}
	return true, nil
}

func (c *RegionCache) Put(ctx context.Context, region, key string, value interface{}) error {
	if value == nil {
		return errNilValue
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, region+key, raw, c.ttls[region]).Err()
}

func (c *RegionCache) Evict(ctx context.Context, region, key string) error {
	return c.client.Del(ctx, region+key).Err()
}

var _ repository.ICache = (*RegionCache)(nil)
