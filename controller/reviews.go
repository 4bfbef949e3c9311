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

package controller

import (
	"bytes"
	"net/http"
	"os"

	"github.com/Netcracker/qubership-reviews-showcase/exception"
	"github.com/Netcracker/qubership-reviews-showcase/page"
	"github.com/Netcracker/qubership-reviews-showcase/service"
)

type ReviewsController interface {
	GetPage(w http.ResponseWriter, r *http.Request)
	GetReviewsFragment(w http.ResponseWriter, r *http.Request)
	GetRandomReviews(w http.ResponseWriter, r *http.Request)
	GetReviewsSchema(w http.ResponseWriter, r *http.Request)
	GetReviewsFile(w http.ResponseWriter, r *http.Request)
}

func NewReviewsController(pageService service.PageService, reviewService service.ReviewService,
	schemaService service.SchemaService, reviewsFile string) ReviewsController {
	return &reviewsControllerImpl{
		pageService:   pageService,
		reviewService: reviewService,
		schemaService: schemaService,
		reviewsFile:   reviewsFile,
	}
}

type reviewsControllerImpl struct {
	pageService   service.PageService
	reviewService service.ReviewService
	schemaService service.SchemaService
	reviewsFile   string
}

func (c *reviewsControllerImpl) GetPage(w http.ResponseWriter, r *http.Request) {
	doc, err := c.pageService.RenderPage(r.Context())
	if err != nil {
		respondWithError(w, "Failed to render page", err)
		return
	}
	var buf bytes.Buffer
	if err = doc.Render(&buf); err != nil {
		respondWithError(w, "Failed to render page", err)
		return
	}
	writeHtml(w, buf.Bytes())
}

// GetReviewsFragment re-renders the reviews section only, used by the refresh button.
func (c *reviewsControllerImpl) GetReviewsFragment(w http.ResponseWriter, r *http.Request) {
	doc, err := c.pageService.RenderPage(r.Context())
	if err != nil {
		respondWithError(w, "Failed to render reviews", err)
		return
	}
	var buf bytes.Buffer
	found, err := doc.RenderElement(&buf, page.ReviewsSectionId)
	if err != nil {
		respondWithError(w, "Failed to render reviews", err)
		return
	}
	if !found {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ReviewsSectionNotFound,
			Message: exception.ReviewsSectionNotFoundMsg,
			Params:  map[string]interface{}{"section": page.ReviewsSectionId},
		})
		return
	}
	writeHtml(w, buf.Bytes())
}

func (c *reviewsControllerImpl) GetRandomReviews(w http.ResponseWriter, r *http.Request) {
	display, err := c.reviewService.GetDisplay(r.Context())
	if err != nil {
		respondWithError(w, "Failed to load reviews", err)
		return
	}
	respondWithJson(w, http.StatusOK, display)
}

func (c *reviewsControllerImpl) GetReviewsSchema(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, c.schemaService.GetReviewsDocumentSchema())
}

func (c *reviewsControllerImpl) GetReviewsFile(w http.ResponseWriter, r *http.Request) {
	reviews, err := os.ReadFile(c.reviewsFile)
	if err != nil {
		if os.IsNotExist(err) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		respondWithError(w, "failed to read reviews file", err)
		return
	}
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	w.Write(reviews)
}
