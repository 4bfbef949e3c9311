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
	"context"

	"github.com/Netcracker/qubership-reviews-showcase/client"
	"github.com/Netcracker/qubership-reviews-showcase/view"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

type ReviewService interface {
	GetReviews(ctx context.Context) ([]view.Review, error)
	GetDisplay(ctx context.Context) (*view.ReviewsDisplay, error)
}

func NewReviewService(reviewsClient client.ReviewsClient, cache ReviewCache) ReviewService {
	return &reviewServiceImpl{
		reviewsClient: reviewsClient,
		cache:         cache,
	}
}

type reviewServiceImpl struct {
	reviewsClient client.ReviewsClient
	cache         ReviewCache
	fetchGroup    singleflight.Group
}

// GetReviews returns the full review list, requesting the source only while nothing is cached for it.
// A failed request leaves the cache empty so the next call requests again.
func (r *reviewServiceImpl) GetReviews(ctx context.Context) ([]view.Review, error) {
	sourceUrl := r.reviewsClient.GetSourceUrl()
	if reviews, ok := r.cache.Get(sourceUrl); ok {
		return reviews, nil
	}

	// callers waiting on the same fetch must not cancel it for each other
	fetchCtx := context.WithoutCancel(ctx)
	result, err, shared := r.fetchGroup.Do(sourceUrl, func() (interface{}, error) {
		reviews, err := r.reviewsClient.GetReviews(fetchCtx)
		if err != nil {
			return nil, err
		}
		r.cache.Set(sourceUrl, reviews)
		log.Infof("Cached %d reviews from %s", len(reviews), sourceUrl)
		return reviews, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debugf("Reviews fetch from %s was shared between concurrent requests", sourceUrl)
	}
	return result.([]view.Review), nil
}

func (r *reviewServiceImpl) GetDisplay(ctx context.Context) (*view.ReviewsDisplay, error) {
	reviews, err := r.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	selected := SelectReviews(reviews)
	display := &view.ReviewsDisplay{
		Id:    uuid.New().String(),
		Items: BuildRenderPlan(selected),
	}
	log.Debugf("Display %s: %d of %d reviews selected", display.Id, len(selected), len(reviews))
	return display, nil
}
