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
	"math/rand/v2"
	"strings"

	"github.com/Netcracker/qubership-reviews-showcase/view"
)

const DisplayCount = 6

// Shuffle permutes reviews in place, every permutation being equally likely.
func Shuffle(reviews []view.Review) {
	shuffle(reviews, rand.IntN)
}

func shuffle(reviews []view.Review, intN func(n int) int) {
	for i := len(reviews) - 1; i > 0; i-- {
		j := intN(i + 1)
		reviews[i], reviews[j] = reviews[j], reviews[i]
	}
}

// IsCandidate reports whether the review may be shown: five stars and a non-blank text comment.
func IsCandidate(r view.Review) bool {
	return r.StarRating == view.StarRatingFive &&
		r.Comment.Valid &&
		strings.TrimSpace(r.Comment.Value) != ""
}

// SelectReviews returns at most DisplayCount random candidates. The input slice is left untouched.
func SelectReviews(reviews []view.Review) []view.Review {
	return selectReviews(reviews, rand.IntN)
}

func selectReviews(reviews []view.Review, intN func(n int) int) []view.Review {
	candidates := make([]view.Review, 0, len(reviews))
	for _, r := range reviews {
		if IsCandidate(r) {
			candidates = append(candidates, r)
		}
	}
	shuffle(candidates, intN)
	if len(candidates) > DisplayCount {
		candidates = candidates[:DisplayCount]
	}
	return candidates
}
