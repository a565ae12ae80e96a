package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/poiesic/notegraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestUpsertNote_SendsDocument(t *testing.T) {
	var gotPath, gotRawPath, gotAuth string
	var gotDoc noteDoc

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRawPath = r.URL.RawPath
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDoc))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, APIKey: "secret", Timeout: time.Second})
	require.NoError(t, err)

	note := &core.Note{ID: "notes/a.md", Title: "A", ModifiedAt: time.Now()}
	chunks := []core.Chunk{
		{NoteID: note.ID, Index: 0, Text: "hello", TextHash: core.DigestContent("hello")},
	}
	vectors := [][]float32{{0.1, 0.2}}

	err = client.UpsertNote(context.Background(), note, chunks, vectors, []string{"planning"})
	require.NoError(t, err)

	// URL.Path holds the decoded path; the escaped form the client actually
	// sent on the wire is preserved in RawPath.
	assert.Equal(t, "/notes/notes/a.md", gotPath)
	assert.Equal(t, "/notes/notes%2Fa.md", gotRawPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "notes/a.md", gotDoc.ID)
	require.Len(t, gotDoc.Chunks, 1)
	assert.Equal(t, "hello", gotDoc.Chunks[0].Text)
	assert.Equal(t, string(core.DigestContent("hello")), gotDoc.Chunks[0].TextHash)
	assert.Equal(t, []float32{0.1, 0.2}, gotDoc.Chunks[0].Vector)
	assert.Equal(t, []string{"planning"}, gotDoc.Entities)
}

func TestUpsertNote_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "schema rejection", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	note := &core.Note{ID: "x"}
	err = client.UpsertNote(context.Background(), note, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema rejection")
}

func TestUpsertNote_VectorMismatch(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://unused"})
	require.NoError(t, err)

	note := &core.Note{ID: "x"}
	chunks := []core.Chunk{{NoteID: "x", Index: 0, Text: "t"}}
	err = client.UpsertNote(context.Background(), note, chunks, nil, nil)
	assert.Error(t, err)
}
