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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Netcracker/qubership-reviews-showcase/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html><html><body>
<section id="reviews-1672"><ul class="cs-card-group"><li>placeholder</li></ul><ul class="cs-card-group"></ul></section>
<button id="js-refresh-reviews">refresh</button>
</body></html>`

var _ PageService = (*pageServiceImpl)(nil)

func countItems(t *testing.T, doc *page.Document) []int {
	t.Helper()
	var counts []int
	for _, g := range doc.CardGroups() {
		n := 0
		for c := g.FirstChild; c != nil; c = c.NextSibling {
			n++
		}
		counts = append(counts, n)
	}
	return counts
}

func TestPageService_RendersSelection(t *testing.T) {
	fake := &fakeReviewsClient{reviews: fiveStarReviews(10)}
	svc := NewPageService(NewReviewService(fake, NewReviewCache(0)), page.NewTemplate([]byte(testPage)))

	doc, err := svc.RenderPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, countItems(t, doc))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.NotContains(t, buf.String(), "placeholder")
	assert.Equal(t, 6, strings.Count(buf.String(), `class="cs-item"`))
}

func TestPageService_FailureLeavesPageUntouched(t *testing.T) {
	fake := &fakeReviewsClient{err: badStatusError()}
	svc := NewPageService(NewReviewService(fake, NewReviewCache(0)), page.NewTemplate([]byte(testPage)))

	doc, err := svc.RenderPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, countItems(t, doc))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.NotContains(t, buf.String(), `class="cs-item"`)
}

func TestPageService_PageWithoutContainers(t *testing.T) {
	fake := &fakeReviewsClient{reviews: fiveStarReviews(3)}
	svc := NewPageService(NewReviewService(fake, NewReviewCache(0)), page.NewTemplate([]byte(`<html><body><p>no reviews here</p></body></html>`)))

	doc, err := svc.RenderPage(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.CardGroups())
}

func TestPageService_EachRenderIsFresh(t *testing.T) {
	fake := &fakeReviewsClient{reviews: fiveStarReviews(2)}
	svc := NewPageService(NewReviewService(fake, NewReviewCache(0)), page.NewTemplate([]byte(testPage)))

	for i := 0; i < 3; i++ {
		doc, err := svc.RenderPage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []int{2, 0}, countItems(t, doc))
	}
	assert.Equal(t, int32(1), fake.calls.Load())
}
