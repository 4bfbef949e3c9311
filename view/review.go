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

import (
	"bytes"
	"encoding/json"
)

type StarRating string

const (
	StarRatingOne   StarRating = "ONE"
	StarRatingTwo   StarRating = "TWO"
	StarRatingThree StarRating = "THREE"
	StarRatingFour  StarRating = "FOUR"
	StarRatingFive  StarRating = "FIVE"
)

type ReviewsDocument struct {
	Reviews []Review `json:"reviews" jsonschema:"required"`
}

type Review struct {
	StarRating StarRating   `json:"starRating" jsonschema:"required,enum=ONE,enum=TWO,enum=THREE,enum=FOUR,enum=FIVE"`
	Comment    OptionalText `json:"comment,omitzero"`
	Reviewer   Reviewer     `json:"reviewer"`
}

type Reviewer struct {
	DisplayName string `json:"displayName" jsonschema:"required"`
}

// UnmarshalJSON reads a rating; a non-string value decodes to an empty rating.
func (s *StarRating) UnmarshalJSON(data []byte) error {
	var t OptionalText
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	*s = StarRating(t.Value)
	return nil
}

// UnmarshalJSON decodes a review entry; entries that are not json objects decode to an empty review.
func (r *Review) UnmarshalJSON(data []byte) error {
	*r = Review{}
	if !isJsonObject(data) {
		return nil
	}
	type review Review
	return json.Unmarshal(data, (*review)(r))
}

func (r *Reviewer) UnmarshalJSON(data []byte) error {
	*r = Reviewer{}
	if !isJsonObject(data) {
		return nil
	}
	var raw struct {
		DisplayName OptionalText `json:"displayName"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.DisplayName = raw.DisplayName.Value
	return nil
}

func isJsonObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// OptionalText holds a json field that may be absent, null or of a non-string type.
// Only a json string makes it Valid; anything else decodes without error.
type OptionalText struct {
	Value string
	Valid bool
}

func Text(s string) OptionalText {
	return OptionalText{Value: s, Valid: true}
}

func (t *OptionalText) UnmarshalJSON(data []byte) error {
	*t = OptionalText{}
	if len(data) == 0 || data[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t.Value = s
	t.Valid = true
	return nil
}

func (t OptionalText) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

func (t OptionalText) IsZero() bool {
	return !t.Valid && t.Value == ""
}

func (t OptionalText) String() string {
	return t.Value
}

