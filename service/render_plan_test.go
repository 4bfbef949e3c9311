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

	"github.com/Netcracker/qubership-reviews-showcase/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRenderPlan_Containers(t *testing.T) {
	items := BuildRenderPlan(fiveStarReviews(6))
	require.Len(t, items, 6)
	for i, item := range items {
		assert.Equal(t, i/3, item.Container)
		assert.Equal(t, view.StarsImageUrl, item.StarsImage)
		assert.Equal(t, view.QuoteImageUrl, item.QuoteImage)
	}
}

func TestBuildRenderPlan_KeepsOrderAndFields(t *testing.T) {
	reviews := fiveStarReviews(2)
	items := BuildRenderPlan(reviews)
	require.Len(t, items, 2)
	assert.Equal(t, "comment 0", items[0].Comment)
	assert.Equal(t, "name comment 0", items[0].ReviewerName)
	assert.Equal(t, "comment 1", items[1].Comment)
	assert.Equal(t, 0, items[1].Container)
}

func TestBuildRenderPlan_Empty(t *testing.T) {
	assert.Empty(t, BuildRenderPlan(nil))
}
