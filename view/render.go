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

package view

const (
	StarsImageUrl = "https://csimg.nyc3.cdn.digitaloceanspaces.com/Images/Graphics/yellow-stars.svg"
	QuoteImageUrl = "https://csimg.nyc3.cdn.digitaloceanspaces.com/Images/Graphics/gray-quote.svg"
)

// RenderItem is one list item of the reviews section. Comment and ReviewerName are trusted markup.
type RenderItem struct {
	Container    int    `json:"container"`
	Comment      string `json:"comment"`
	ReviewerName string `json:"reviewerName"`
	StarsImage   string `json:"starsImage"`
	QuoteImage   string `json:"quoteImage"`
}

type ReviewsDisplay struct {
	Id    string       `json:"id"`
	Items []RenderItem `json:"items"`
}
