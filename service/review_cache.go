// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"slices"
	"time"

	"github.com/Netcracker/qubership-reviews-showcase/view"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"
)

const reviewCacheCapacity = 16

// ReviewCache keeps fetched review lists per source url. Stored lists are never modified.
type ReviewCache interface {
	Get(sourceUrl string) ([]view.Review, bool)
	Set(sourceUrl string, reviews []view.Review)
	IsPopulated(sourceUrl string) bool
}

// NewReviewCache creates the cache. Zero ttl keeps entries for the process lifetime.
func NewReviewCache(ttl time.Duration) ReviewCache {
	cache := libcache.LRU.New(reviewCacheCapacity)
	if ttl > 0 {
		// expired entries are dropped lazily on the next load
		cache.SetTTL(ttl)
	}
	return &reviewCacheImpl{cache: cache}
}

type reviewCacheImpl struct {
	cache libcache.Cache
}

func (c *reviewCacheImpl) Get(sourceUrl string) ([]view.Review, bool) {
	v, ok := c.cache.Load(sourceUrl)
	if !ok {
		return nil, false
	}
	reviews, ok := v.([]view.Review)
	return reviews, ok
}

func (c *reviewCacheImpl) Set(sourceUrl string, reviews []view.Review) {
	if reviews == nil {
		reviews = []view.Review{}
	}
	c.cache.Store(sourceUrl, slices.Clip(slices.Clone(reviews)))
}

func (c *reviewCacheImpl) IsPopulated(sourceUrl string) bool {
	return c.cache.Contains(sourceUrl)
}
