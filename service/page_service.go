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

	"github.com/Netcracker/qubership-reviews-showcase/page"
	log "github.com/sirupsen/logrus"
)

type PageService interface {
	// RenderPage returns the page with freshly selected reviews placed into its card groups.
	// When reviews can't be loaded the page is returned as is and the failure is only logged.
	RenderPage(ctx context.Context) (*page.Document, error)
}

func NewPageService(reviewService ReviewService, template *page.Template) PageService {
	return &pageServiceImpl{reviewService: reviewService, template: template}
}

type pageServiceImpl struct {
	reviewService ReviewService
	template      *page.Template
}

func (p *pageServiceImpl) RenderPage(ctx context.Context) (*page.Document, error) {
	doc, err := p.template.NewDocument()
	if err != nil {
		return nil, err
	}

	display, err := p.reviewService.GetDisplay(ctx)
	if err != nil {
		log.Errorf("Failed to load reviews: %v", err)
		return doc, nil
	}

	if len(doc.CardGroups()) == 0 {
		log.Warnf("Page has no .%s containers in #%s, reviews are not rendered", page.CardGroupClass, page.ReviewsSectionId)
		return doc, nil
	}
	placed := doc.ApplyReviews(display.Items)
	log.Debugf("Display %s: rendered %d of %d items", display.Id, placed, len(display.Items))
	return doc, nil
}
