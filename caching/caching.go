// Package caching holds the in-memory TTL cache the catalog store uses
// for title-by-id lookups.
package caching

import (
	"strconv"
	"time"

	"streamd/database/model"

	"github.com/patrickmn/go-cache"
)

const (
	titleTTL        = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

type TitleCache struct {
	memoryCache *cache.Cache
}

func NewTitleCache() *TitleCache {
	return &TitleCache{
		memoryCache: cache.New(titleTTL, cleanupInterval),
	}
}

func (c *TitleCache) Get(id int) (*model.Title, bool) {
	obj, ok := c.memoryCache.Get(strconv.Itoa(id))
	if !ok {
		return nil, false
	}
	title, ok := obj.(*model.Title)
	return title, ok
}

func (c *TitleCache) Set(title *model.Title) {
	c.memoryCache.SetDefault(strconv.Itoa(title.Id), title)
}

func (c *TitleCache) Invalidate(id int) {
	c.memoryCache.Delete(strconv.Itoa(id))
}

func (c *TitleCache) Flush() {
	c.memoryCache.Flush()
}
