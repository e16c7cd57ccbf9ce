// Copyright 2026 Seekwell Labs
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


package core

import "fmt"

// ValidateProduct validates a Product according to domain rules.
//
// Validation rules:
//   - Name, Category, Description and Image must not be empty
//   - Price must not be negative
//
// NOT validated (populated by the catalog service):
//   - Embedding (nil until the sync policy computes it)
//   - Slug and Id (derived at creation)
func ValidateProduct(product *Product) error {
	if product == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}

	if product.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyName)
	}

	if product.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyCategory)
	}

	if product.Description == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyDescription)
	}

	if product.Image == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyImage)
	}

	if product.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrNegativePrice)
	}

	return nil
}
