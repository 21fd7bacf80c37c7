package sitecontent

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
)

const (
	heroBackgroundKey = "site:hero_background"
	assetKeyPrefix    = "site:assets:"
)

// Store keeps the public site's mutable content in redis: the hero
// background image (stored as a data URL, no expiry) and the versioned
// static asset manifest.
type Store struct {
	rdb     *redis.Client
	version string
	assets  []string
}

func New(rdb *redis.Client, assetVersion string, assetURLs []string) *Store {
	return &Store{
		rdb:     rdb,
		version: assetVersion,
		assets:  assetURLs,
	}
}

// ======================================================
// HERO BACKGROUND
// ======================================================

func (s *Store) HeroBackground(ctx context.Context) (string, error) {
	val, err := s.rdb.Get(ctx, heroBackgroundKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *Store) SetHeroBackground(ctx context.Context, dataURL string) error {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return fmt.Errorf("hero background must be an image data URL")
	}
	return s.rdb.Set(ctx, heroBackgroundKey, dataURL, 0).Err()
}

// ======================================================
// ASSET MANIFEST
// ======================================================

func (s *Store) assetKey() string {
	return assetKeyPrefix + s.version
}

// Prime writes the current manifest and purges manifests left behind by
// previous versions. Called once at startup.
func (s *Store) Prime(ctx context.Context) error {
	keys, err := s.rdb.Keys(ctx, assetKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	for _, key := range keys {
		if key == s.assetKey() {
			continue
		}
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			return err
		}
	}

	if len(s.assets) == 0 {
		return nil
	}

	vals := make([]interface{}, len(s.assets))
	for i, u := range s.assets {
		vals[i] = u
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, s.assetKey())
	pipe.RPush(ctx, s.assetKey(), vals...)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) AssetManifest(ctx context.Context) (string, []string, error) {
	urls, err := s.rdb.LRange(ctx, s.assetKey(), 0, -1).Result()
	if err != nil {
		return s.version, nil, err
	}
	return s.version, urls, nil
}
