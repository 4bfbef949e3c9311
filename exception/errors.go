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

package exception

import (
	"fmt"
	"strings"
)

type CustomError struct {
	Status  int                    `json:"status"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Debug   string                 `json:"debug,omitempty"`
}

func (c CustomError) Error() string {
	msg := c.Message
	for k, v := range c.Params {
		//todo make smart replace (e.g. now it replaces $urlPath if we have $url in params)
		msg = strings.ReplaceAll(msg, "$"+k, fmt.Sprintf("%v", v))
	}
	return msg
}

const ReviewsSourceUnavailable = "3000"
const ReviewsSourceUnavailableMsg = "Failed to request reviews document $url: $error"

const ReviewsSourceBadStatus = "3001"
const ReviewsSourceBadStatusMsg = "Reviews document $url responded with status code $code"

const ReviewsDocumentMalformed = "3002"
const ReviewsDocumentMalformedMsg = "Reviews document $url is malformed: $error"

const PageTemplateUnavailable = "3100"
const PageTemplateUnavailableMsg = "Failed to load page template $path: $error"

const ReviewsSectionNotFound = "3101"
const ReviewsSectionNotFoundMsg = "Section #$section is not found in page"
