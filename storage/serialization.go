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


package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/poiesic/notegraph/core"
)

// syncStateDoc is the persisted JSON form of core.SyncState.
// Field names and value forms (hex digest, RFC 3339 timestamp) are part of
// the durable layout and must not change incompatibly.
type syncStateDoc struct {
	NoteID          string `json:"note_id"`
	LastDigest      string `json:"last_digest"`
	LastProcessedAt string `json:"last_processed_at"`
	Status          string `json:"status"`
}

// MarshalSyncState serializes a SyncState to its durable JSON form.
func MarshalSyncState(state *core.SyncState) ([]byte, error) {
	doc := syncStateDoc{
		NoteID:          state.NoteID,
		LastDigest:      string(state.Digest),
		LastProcessedAt: state.ProcessedAt.UTC().Format(time.RFC3339Nano),
		Status:          state.Status.String(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalSyncState deserializes a SyncState from its durable JSON form.
func UnmarshalSyncState(data []byte) (*core.SyncState, error) {
	var doc syncStateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	status, err := core.ParseSyncStatus(doc.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	processedAt, err := time.Parse(time.RFC3339Nano, doc.LastProcessedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	return &core.SyncState{
		NoteID:      doc.NoteID,
		Digest:      core.Digest(doc.LastDigest),
		ProcessedAt: processedAt,
		Status:      status,
	}, nil
}
