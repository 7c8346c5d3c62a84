// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache for the public
// pages. When a page is rendered, the resulting HTML is stored in Valkey so
// subsequent requests skip the DB queries and template execution entirely.
// Admin writes invalidate the pages that render the touched collection, so
// the next public request re-fetches fresh content.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// pagesByCollection maps a content collection to the public pages that
// render it. Collections not listed here invalidate every page.
var pagesByCollection = map[string][]string{
	"heroes":           {"/home"},
	"content_sections": {"/home"},
	"testimonials":     {"/home"},
	"calls_to_action":  {"/home", "/apply"},
	"team_members":     {"/home", "/team"},
	"curriculum_items": {"/curriculum"},
	"qualifications":   {"/qualifications"},
	"faqs":             {"/qualifications"},
	"splash":           {"/"},
}

// PageCache manages full-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a page path. Returns false on miss.
func (pc *PageCache) Get(ctx context.Context, path string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+path).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "path", path, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "path", path)
	return val, true
}

// Set stores rendered HTML for a page path with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, path string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+path, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "path", path, "error", err)
	}
}

// InvalidatePage removes a single page from the cache by its path.
func (pc *PageCache) InvalidatePage(ctx context.Context, path string) {
	if err := pc.client.Del(ctx, pageKeyPrefix+path).Err(); err != nil {
		slog.Warn("page cache invalidate error", "path", path, "error", err)
	}
	slog.Debug("page cache invalidated", "path", path)
}

// InvalidateCollection removes every page that renders the given collection.
// An unknown collection clears the whole cache rather than risk serving
// stale content.
func (pc *PageCache) InvalidateCollection(ctx context.Context, collection string) {
	paths, ok := pagesByCollection[collection]
	if !ok {
		pc.InvalidateAll(ctx)
		return
	}
	for _, path := range paths {
		pc.InvalidatePage(ctx, path)
	}
}

// InvalidateAll removes all cached pages by scanning for the prefix.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache fully cleared", "deleted", deleted)
	}
}
