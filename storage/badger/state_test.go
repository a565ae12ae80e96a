package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/notegraph/core"
	"github.com/poiesic/notegraph/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStateRepo(t *testing.T) storage.StateRepository {
	states, backend, err := NewMemoryState()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return states
}

func newState(noteID, content string, status core.SyncStatus) *core.SyncState {
	return &core.SyncState{
		NoteID:      noteID,
		Digest:      core.DigestContent(content),
		ProcessedAt: time.Now().UTC(),
		Status:      status,
	}
}

func TestStateRepository_GetNotFound(t *testing.T) {
	states := setupStateRepo(t)

	_, err := states.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStateRepository_CommitAndGet(t *testing.T) {
	states := setupStateRepo(t)
	ctx := context.Background()

	state := newState("notes/a.md", "hello", core.SyncStatusIngested)
	require.NoError(t, states.Commit(ctx, state))

	got, err := states.Get(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, state.Digest, got.Digest)
	assert.Equal(t, core.SyncStatusIngested, got.Status)
}

func TestStateRepository_CommitUpserts(t *testing.T) {
	states := setupStateRepo(t)
	ctx := context.Background()

	require.NoError(t, states.Commit(ctx, newState("notes/a.md", "v1", core.SyncStatusIngested)))
	require.NoError(t, states.Commit(ctx, newState("notes/a.md", "v2", core.SyncStatusIngested)))

	got, err := states.Get(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, core.DigestContent("v2"), got.Digest)

	snapshot, err := states.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot, 1)
}

func TestStateRepository_CommitRejectsInvalid(t *testing.T) {
	states := setupStateRepo(t)
	ctx := context.Background()

	err := states.Commit(ctx, &core.SyncState{NoteID: "a", Digest: "bad", Status: core.SyncStatusIngested})
	assert.ErrorIs(t, err, core.ErrInvalidDigest)

	err = states.Commit(ctx, newState("a", "x", core.SyncStatusErrored))
	assert.ErrorIs(t, err, core.ErrInvalidSyncStatus)
}

func TestStateRepository_Snapshot(t *testing.T) {
	states := setupStateRepo(t)
	ctx := context.Background()

	require.NoError(t, states.Commit(ctx, newState("a", "1", core.SyncStatusIngested)))
	require.NoError(t, states.Commit(ctx, newState("b", "2", core.SyncStatusDryRunRecorded)))
	require.NoError(t, states.Commit(ctx, newState("c", "3", core.SyncStatusIngested)))

	snapshot, err := states.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 3)
	assert.Equal(t, core.SyncStatusDryRunRecorded, snapshot["b"].Status)
}

func TestStateRepository_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	states, err := NewStateRepository(backend)
	require.NoError(t, err)

	require.NoError(t, states.Commit(ctx, newState("notes/kept.md", "durable", core.SyncStatusIngested)))
	require.NoError(t, backend.Close())

	backend, err = OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()
	states, err = NewStateRepository(backend)
	require.NoError(t, err)

	got, err := states.Get(ctx, "notes/kept.md")
	require.NoError(t, err)
	assert.Equal(t, core.DigestContent("durable"), got.Digest)
}

func TestStateRepository_ClosedBackend(t *testing.T) {
	states, backend, err := NewMemoryState()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	_, err = states.Get(context.Background(), "a")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = states.Commit(context.Background(), newState("a", "x", core.SyncStatusIngested))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
