// Copyright 2025 Poiesic Systems
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


// Package ai provides the embedding abstraction used by notegraph.
//
// The orchestrator depends on the Embedder interface rather than any concrete
// service, so backends can be swapped without touching the sync logic.
//
// # Implementation Packages
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: deterministic test double with call counting
//
// # Constructor Return Type Pattern
//
// The production constructor returns the INTERFACE type to enforce
// abstraction:
//
//	embedder, err := openai.NewEmbedder(config)  // returns ai.Embedder
//
// Test utility constructors return CONCRETE types to enable test assertions
// and behavior injection:
//
//	mockEmbed := mock.NewEmbedder()  // returns *mock.Embedder
//	count := mockEmbed.CallCount()   // test assertion
package ai
