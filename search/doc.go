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


// Package search ranks catalog products against a natural-language query.
//
// A query is embedded once per search and products are ordered by ascending
// Euclidean distance between the query vector and each stored product
// embedding. Pagination (skip, limit) is applied to the full ordering, so a
// window always lines up with the complete ranking regardless of page size.
// Soft-deleted products and products without embeddings never appear.
package search
