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

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Netcracker/qubership-reviews-showcase/exception"
	"github.com/Netcracker/qubership-reviews-showcase/view"
	log "github.com/sirupsen/logrus"
	"gopkg.in/resty.v1"
)

type ReviewsClient interface {
	GetReviews(ctx context.Context) ([]view.Review, error)
	GetSourceUrl() string
}

// NewReviewsClient creates a client for the reviews document at reviewsUrl.
// Zero timeout means the request waits for the source as long as it takes.
func NewReviewsClient(reviewsUrl string, timeout time.Duration) ReviewsClient {
	parsedUrl, err := url.Parse(reviewsUrl)
	reviewsHost := ""
	if err != nil {
		log.Errorf("Can't parse reviews url: %v", err)
	} else {
		reviewsHost = parsedUrl.Hostname()
	}

	cl := http.Client{Timeout: timeout}
	client := resty.NewWithClient(&cl)
	if reviewsHost != "" {
		client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(reviewsHost))
	}

	return &reviewsClientImpl{reviewsUrl: reviewsUrl, client: client}
}

type reviewsClientImpl struct {
	reviewsUrl string
	client     *resty.Client
}

type reviewsDocument struct {
	Reviews *[]view.Review `json:"reviews"`
}

func (r reviewsClientImpl) GetSourceUrl() string {
	return r.reviewsUrl
}

func (r reviewsClientImpl) GetReviews(ctx context.Context) ([]view.Review, error) {
	req := r.client.R()
	req.SetContext(ctx)
	req.SetHeader("Accept", "application/json")

	resp, err := req.Get(r.reviewsUrl)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadGateway,
			Code:    exception.ReviewsSourceUnavailable,
			Message: exception.ReviewsSourceUnavailableMsg,
			Params:  map[string]interface{}{"url": r.reviewsUrl, "error": err.Error()},
		}
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &exception.CustomError{
			Status:  http.StatusBadGateway,
			Code:    exception.ReviewsSourceBadStatus,
			Message: exception.ReviewsSourceBadStatusMsg,
			Params:  map[string]interface{}{"url": r.reviewsUrl, "code": strconv.Itoa(resp.StatusCode())},
			Debug:   string(resp.Body()),
		}
	}

	var doc reviewsDocument
	err = json.Unmarshal(resp.Body(), &doc)
	if err != nil {
		return nil, malformedDocumentError(r.reviewsUrl, err)
	}
	if doc.Reviews == nil {
		return nil, malformedDocumentError(r.reviewsUrl, fmt.Errorf("field 'reviews' is missing"))
	}
	log.Debugf("Fetched %d reviews from %s", len(*doc.Reviews), r.reviewsUrl)
	return *doc.Reviews, nil
}

func malformedDocumentError(reviewsUrl string, err error) error {
	return &exception.CustomError{
		Status:  http.StatusBadGateway,
		Code:    exception.ReviewsDocumentMalformed,
		Message: exception.ReviewsDocumentMalformedMsg,
		Params:  map[string]interface{}{"url": reviewsUrl, "error": err.Error()},
	}
}
