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


// Package storage provides the storage abstraction layer for wares.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic, allowing different backends (BadgerDB,
// in-memory, a vector database) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors return interfaces to enforce abstraction and enable
// alternative backend implementations:
//
//	repo, err := badger.NewProductRepository(backend)  // storage.ProductRepository
//
// # Distance-Ordered Scans
//
// ScanNearest is the contract the searcher depends on: all live products with
// an embedding, ordered by ascending Euclidean distance from a probe vector,
// with offset and limit applied after the ordering. BadgerDB has no native
// vector ordering, so its implementation loads the eligible vectors, computes
// the distances and sorts; a backend with native ordered vector search must
// preserve exactly the same ordering and pagination semantics.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines. Concurrent writers to the same product
// serialize on the backend's single-row transaction.
package storage
