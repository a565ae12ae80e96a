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


package core

import "fmt"

// ValidateNote validates a Note according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//
// NOT validated:
//   - Content (empty content is legal; the note is skipped downstream)
//   - ModifiedAt (zero is legal for sources without modification times)
func ValidateNote(note *Note) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrInvalidNote)
	}

	if note.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyNoteID)
	}

	return nil
}

// ValidateSyncState validates a SyncState before it is committed.
//
// Validation rules:
//   - NoteID must not be empty
//   - Digest must be a well-formed 256-bit hex string
//   - Status must be a persistable status (Ingested or DryRunRecorded)
func ValidateSyncState(state *SyncState) error {
	if state == nil {
		return fmt.Errorf("%w: state is nil", ErrInvalidSyncState)
	}

	if state.NoteID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSyncState, ErrEmptyNoteID)
	}

	if !state.Digest.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidSyncState, ErrInvalidDigest)
	}

	if state.Status != SyncStatusIngested && state.Status != SyncStatusDryRunRecorded {
		return fmt.Errorf("%w: %w: only ingested and dry_run_recorded states are persisted",
			ErrInvalidSyncState, ErrInvalidSyncStatus)
	}

	return nil
}
