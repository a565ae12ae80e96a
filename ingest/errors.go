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


package ingest

import "errors"

var (
	// ErrSourceRequired indicates a nil source connector was passed to NewOrchestrator.
	ErrSourceRequired = errors.New("source connector is required")

	// ErrEmbedderRequired indicates a nil embedder was passed to NewOrchestrator.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrGraphClientRequired indicates a nil graph client was passed to NewOrchestrator.
	ErrGraphClientRequired = errors.New("graph client is required")

	// ErrStatesRequired indicates a nil state repository was passed to NewOrchestrator.
	ErrStatesRequired = errors.New("state repository is required")

	// ErrInvalidMaxAttempts indicates RetryWithBackoff was called with maxAttempts <= 0.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")
)
