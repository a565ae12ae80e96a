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


// Package storage provides the durable sync-state abstraction for notegraph.
//
// This package defines the StateRepository interface that decouples storage
// implementation from the orchestrator. It allows different backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.StateRepository interface to enforce
// abstraction and enable multiple backend implementations:
//
//	states, err := badger.NewStateRepository(backend)
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Persisted Layout
//
// Each state record is stored as a small JSON document keyed by note ID:
//
//	{"note_id": "...", "last_digest": "<hex>", "last_processed_at": "<RFC 3339>", "status": "ingested"}
//
// The hex digest and timestamp forms are part of the on-disk contract: they
// must be loadable at process start and reflect the result of the last
// completed run.
//
// # Thread Safety
//
// Reads (Get, Snapshot) are safe from multiple goroutines. Commit is designed
// for a single logical writer; the orchestrator funnels all worker results
// through one goroutine before they reach Commit.
package storage
