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


package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/notegraph/core"
	"github.com/poiesic/notegraph/storage"
)

// StateRepository implements storage.StateRepository for BadgerDB.
type StateRepository struct {
	backend *Backend
}

var _ storage.StateRepository = (*StateRepository)(nil)

// NewStateRepository creates a new sync-state repository.
//
// Returns storage.StateRepository interface to enforce abstraction.
func NewStateRepository(backend *Backend) (storage.StateRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	return &StateRepository{backend: backend}, nil
}

// Get retrieves the sync state for a note.
// Returns storage.ErrNotFound if the note has never been committed.
func (r *StateRepository) Get(ctx context.Context, noteID string) (*core.SyncState, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var state *core.SyncState
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSyncStateKey(noteID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			state, unmarshalErr = storage.UnmarshalSyncState(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Commit atomically upserts a note's sync state and flushes it to disk.
// The flush per commit is what bounds crash loss to in-flight notes only.
func (r *StateRepository) Commit(ctx context.Context, state *core.SyncState) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := core.ValidateSyncState(state); err != nil {
		return err
	}

	value, err := storage.MarshalSyncState(state)
	if err != nil {
		return err
	}

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSyncStateKey(state.NoteID), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	return r.backend.Sync()
}

// Snapshot returns the full persisted mapping of note ID to sync state.
func (r *StateRepository) Snapshot(ctx context.Context) (map[string]*core.SyncState, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	states := make(map[string]*core.SyncState)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = syncStateScanPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				state, err := storage.UnmarshalSyncState(val)
				if err != nil {
					return err
				}
				states[state.NoteID] = state
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return states, nil
}

// Close closes the underlying backend.
func (r *StateRepository) Close() error {
	if r.backend.IsClosed() {
		return nil
	}
	return r.backend.Close()
}
