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

import "errors"

// Domain validation errors
var (
	// ErrInvalidNote indicates a Note failed validation.
	ErrInvalidNote = errors.New("invalid note")

	// ErrInvalidSyncState indicates a SyncState failed validation.
	ErrInvalidSyncState = errors.New("invalid sync state")

	// ErrEmptyNoteID indicates the note ID field is empty.
	ErrEmptyNoteID = errors.New("note id cannot be empty")

	// ErrInvalidDigest indicates a digest is not a 256-bit hex string.
	ErrInvalidDigest = errors.New("invalid content digest")

	// ErrInvalidSyncStatus indicates an unknown SyncStatus value.
	ErrInvalidSyncStatus = errors.New("invalid sync status")
)
