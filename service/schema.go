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
	"reflect"

	"github.com/Netcracker/qubership-reviews-showcase/view"
	"github.com/invopop/jsonschema"
)

type SchemaService interface {
	GetReviewsDocumentSchema() *jsonschema.Schema
}

func NewSchemaService() SchemaService {
	return &schemaServiceImpl{reviewsDocumentSchema: GenerateSchema[view.ReviewsDocument]()}
}

type schemaServiceImpl struct {
	reviewsDocumentSchema *jsonschema.Schema
}

func (s schemaServiceImpl) GetReviewsDocumentSchema() *jsonschema.Schema {
	return s.reviewsDocumentSchema
}

var optionalTextType = reflect.TypeOf(view.OptionalText{})

func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == optionalTextType {
				return &jsonschema.Schema{Type: "string"}
			}
			return nil
		},
	}
	var v T
	return reflector.Reflect(v)
}
