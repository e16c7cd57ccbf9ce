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


// Package ai provides the embedding abstraction used across wares.
//
// The catalog sync policy and the searcher both depend on the single
// Embedder interface, injected at construction time rather than reached
// through a package-level singleton. This keeps the provider substitutable:
// production code wires ai/openai, tests wire ai/mock.
//
// # Implementation Packages
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: deterministic test double with call tracking
//
// Public constructors (openai.NewEmbedder) return the ai.Embedder interface
// to prevent coupling to a concrete provider. The mock constructor returns a
// concrete *mock.MockEmbedder so tests can reach CallCount and inject
// behavior through the function fields.
package ai
