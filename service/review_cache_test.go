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
	"testing"
	"time"

	"github.com/Netcracker/qubership-reviews-showcase/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSourceUrl = "http://reviews.test/reviews.json"

func TestReviewCache_EmptyUntilSet(t *testing.T) {
	cache := NewReviewCache(0)
	assert.False(t, cache.IsPopulated(testSourceUrl))
	_, ok := cache.Get(testSourceUrl)
	assert.False(t, ok)

	cache.Set(testSourceUrl, fiveStarReviews(3))
	assert.True(t, cache.IsPopulated(testSourceUrl))
	reviews, ok := cache.Get(testSourceUrl)
	require.True(t, ok)
	assert.Len(t, reviews, 3)
}

func TestReviewCache_EmptyListIsPopulated(t *testing.T) {
	cache := NewReviewCache(0)
	cache.Set(testSourceUrl, nil)
	assert.True(t, cache.IsPopulated(testSourceUrl))
	reviews, ok := cache.Get(testSourceUrl)
	require.True(t, ok)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewCache_StoresCopy(t *testing.T) {
	cache := NewReviewCache(0)
	reviews := fiveStarReviews(2)
	cache.Set(testSourceUrl, reviews)
	reviews[0] = view.Review{}

	cached, ok := cache.Get(testSourceUrl)
	require.True(t, ok)
	assert.Equal(t, "comment 0", cached[0].Comment.Value)
}

func TestReviewCache_KeyedBySource(t *testing.T) {
	cache := NewReviewCache(0)
	cache.Set(testSourceUrl, fiveStarReviews(1))
	assert.False(t, cache.IsPopulated("http://other.test/reviews.json"))
}

func TestReviewCache_LastWriteWins(t *testing.T) {
	cache := NewReviewCache(0)
	cache.Set(testSourceUrl, fiveStarReviews(1))
	cache.Set(testSourceUrl, fiveStarReviews(4))
	reviews, ok := cache.Get(testSourceUrl)
	require.True(t, ok)
	assert.Len(t, reviews, 4)
}

func TestReviewCache_TTL(t *testing.T) {
	cache := NewReviewCache(50 * time.Millisecond)
	cache.Set(testSourceUrl, fiveStarReviews(1))
	assert.True(t, cache.IsPopulated(testSourceUrl))
	assert.Eventually(t, func() bool {
		_, ok := cache.Get(testSourceUrl)
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}
