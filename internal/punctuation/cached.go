package punctuation

import (
	"context"

	"github.com/zjrosen/cryptowords/internal/cachemanager"
)

// Cached memoizes another Classifier. Each distinct token is classified
// once for the lifetime of the cache.
type Cached struct {
	next       Classifier
	strips     *cachemanager.InMemoryCacheManager[string, string]
	disallowed *cachemanager.InMemoryCacheManager[string, bool]
	stripRT    *cachemanager.ReadThroughCache[string, string, string]
	checkRT    *cachemanager.ReadThroughCache[string, bool, string]
}

var _ Classifier = (*Cached)(nil)

// NewCached wraps next with an unbounded in-memory cache.
func NewCached(next Classifier) *Cached {
	c := &Cached{
		next:       next,
		strips:     cachemanager.NewInMemoryCacheManager[string, string]("punctuation-strip", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval),
		disallowed: cachemanager.NewInMemoryCacheManager[string, bool]("punctuation-disallowed", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval),
	}
	c.stripRT = cachemanager.NewReadThroughCache[string, string, string](c.strips,
		func(_ context.Context, token string) (string, error) {
			return c.next.Strip(token), nil
		}, false)
	c.checkRT = cachemanager.NewReadThroughCache[string, bool, string](c.disallowed,
		func(_ context.Context, token string) (bool, error) {
			return c.next.HasDisallowed(token), nil
		}, false)
	return c
}

// Strip returns the cached stripped form of token.
func (c *Cached) Strip(token string) string {
	cleaned, _ := c.stripRT.Get(context.Background(), token, token, cachemanager.NoExpiration)
	return cleaned
}

// HasDisallowed returns the cached verdict for token.
func (c *Cached) HasDisallowed(token string) bool {
	bad, _ := c.checkRT.Get(context.Background(), token, token, cachemanager.NoExpiration)
	return bad
}

// Len returns the number of cached entries across both lookups.
func (c *Cached) Len() int {
	return c.strips.Len() + c.disallowed.Len()
}

// Purge drops every cached entry.
func (c *Cached) Purge() {
	ctx := context.Background()
	_ = c.strips.Flush(ctx)
	_ = c.disallowed.Flush(ctx)
}
