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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProduct indicates a Product failed validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyCategory indicates the Category field is empty.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrEmptyDescription indicates the Description field is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrEmptyImage indicates the Image field is empty.
	ErrEmptyImage = errors.New("image cannot be empty")

	// ErrNegativePrice indicates a price below zero.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidPrice indicates a price string that cannot be normalized.
	ErrInvalidPrice = errors.New("invalid price")
)
