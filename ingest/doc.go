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


// Package ingest orchestrates incremental synchronization of a note corpus
// into the knowledge graph.
//
// Each run lists the corpus, classifies every note by content digest against
// the durable sync state, and pushes new or changed notes through chunking,
// embedding, and graph upsert on a bounded worker pool. Unchanged notes are
// skipped entirely; that skip is the primary cost-avoidance invariant.
//
// # Per-note state machine
//
//	Discovered -> Unchanged (skip)
//	           -> Candidate -> Processing -> Ingested  (state committed)
//	                                      -> Errored   (state NOT committed)
//
// State is committed only on full success, so a failed note is naturally
// retried wholesale on the next run. There is no partial-note ingestion: a
// note's chunks embed and upsert together or not at all.
//
// # Concurrency
//
// Notes are processed in parallel, but all report updates and state commits
// are serialized through a single writer goroutine. No ordering is guaranteed
// between notes; within a note the pipeline steps are strictly sequential.
package ingest
