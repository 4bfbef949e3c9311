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

import "github.com/Netcracker/qubership-reviews-showcase/view"

const ItemsPerContainer = 3

// BuildRenderPlan maps selected reviews to list items, three per container in selection order.
func BuildRenderPlan(reviews []view.Review) []view.RenderItem {
	items := make([]view.RenderItem, 0, len(reviews))
	for i, r := range reviews {
		items = append(items, view.RenderItem{
			Container:    i / ItemsPerContainer,
			Comment:      r.Comment.Value,
			ReviewerName: r.Reviewer.DisplayName,
			StarsImage:   view.StarsImageUrl,
			QuoteImage:   view.QuoteImageUrl,
		})
	}
	return items
}
