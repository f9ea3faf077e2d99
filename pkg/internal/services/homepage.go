package services

import (
	"context"
	"fmt"
	"time"

	localCache "github.com/emberworks/quillfeed/pkg/internal/cache"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// The home listing is the only rendered surface this service memoizes.
// Within the TTL window every caller gets the same bytes back, even when the
// post set has moved on underneath; that staleness is the design trade-off.
// Writes never touch this cache, only ClearHomeFeed and the TTL evict.

const homeFeedCacheTag = "home-feed"

func homeFeedCacheKey(page int) string {
	return fmt.Sprintf("home-feed#%d", page)
}

func HomeFeedTTL() time.Duration {
	if ttl := viper.GetDuration("cache.feed_ttl"); ttl > 0 {
		return ttl
	}
	return 20 * time.Second
}

// GetOrRenderHomeFeed returns the cached rendition of the given home page,
// rendering and storing it on a miss.
func GetOrRenderHomeFeed(page int, render func() ([]byte, error)) ([]byte, error) {
	cacheManager := cache.New[[]byte](localCache.S)
	ctx := context.Background()
	key := homeFeedCacheKey(page)

	if content, err := cacheManager.Get(ctx, key); err == nil && content != nil {
		return content, nil
	}

	content, err := render()
	if err != nil {
		return nil, err
	}

	if err := cacheManager.Set(
		ctx,
		key,
		content,
		store.WithExpiration(HomeFeedTTL()),
		store.WithTags([]string{homeFeedCacheTag}),
	); err != nil {
		log.Warn().Err(err).Int("page", page).Msg("An error occurred when caching home feed...")
	}
	// Ristretto applies sets asynchronously; flush so the window starts now.
	localCache.R.Wait()

	return content, nil
}

// ClearHomeFeed evicts every cached home page at once. There is no partial
// invalidation; racing clears are harmless since the slate ends up empty either way.
func ClearHomeFeed() {
	cacheManager := cache.New[[]byte](localCache.S)
	if err := cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{homeFeedCacheTag}),
	); err != nil {
		log.Warn().Err(err).Msg("An error occurred when clearing home feed cache...")
	}
	localCache.R.Wait()
}
