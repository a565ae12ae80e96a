package core

import "time"

// Note is a source document to be synchronized into the knowledge graph.
// Identity is the source-assigned ID; Content is mutable across the note's
// lifetime. Notes are owned by the source connector and read-only here.
type Note struct {
	ID         string
	Title      string
	Content    string
	ModifiedAt time.Time // Last modification time reported by the source
	Tags       []string  // #tags extracted by the connector, if any
	Links      []string  // [[wikilink]] targets extracted by the connector, if any
}

// Entities returns the deduplicated union of the note's tags and links,
// preserving first-seen order. These become related entity nodes in the graph.
func (n *Note) Entities() []string {
	seen := make(map[string]struct{}, len(n.Tags)+len(n.Links))
	var out []string
	for _, group := range [][]string{n.Tags, n.Links} {
		for _, e := range group {
			if e == "" {
				continue
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// Chunk is a bounded-size, order-preserving slice of a note's text,
// sized for the embedding model's input limit.
type Chunk struct {
	NoteID   string
	Index    int // 0-based, stable ordering within the note
	Text     string
	TextHash Digest
}

// SyncStatus classifies the outcome of a note's pipeline within a run.
type SyncStatus int

const (
	// SyncStatusUnchanged means the note's digest matched the committed state
	// and the pipeline was skipped.
	SyncStatusUnchanged SyncStatus = iota + 1
	// SyncStatusIngested means the full pipeline succeeded and state was committed.
	SyncStatusIngested
	// SyncStatusErrored means a pipeline step failed; state was not committed.
	SyncStatusErrored
	// SyncStatusDryRunRecorded means a dry run classified and chunked the note
	// without invoking the embedding or graph clients.
	SyncStatusDryRunRecorded
)

// String returns the canonical name used in the persisted state layout.
func (s SyncStatus) String() string {
	switch s {
	case SyncStatusUnchanged:
		return "unchanged"
	case SyncStatusIngested:
		return "ingested"
	case SyncStatusErrored:
		return "errored"
	case SyncStatusDryRunRecorded:
		return "dry_run_recorded"
	default:
		return "unknown"
	}
}

// ParseSyncStatus converts a persisted status name back to a SyncStatus.
func ParseSyncStatus(name string) (SyncStatus, error) {
	switch name {
	case "unchanged":
		return SyncStatusUnchanged, nil
	case "ingested":
		return SyncStatusIngested, nil
	case "errored":
		return SyncStatusErrored, nil
	case "dry_run_recorded":
		return SyncStatusDryRunRecorded, nil
	default:
		return 0, ErrInvalidSyncStatus
	}
}

// SyncState is the durable, authoritative record of "has this note's current
// content been successfully pushed downstream". It is mutated only by the
// orchestrator's single writer, on successful completion of a note's pipeline.
type SyncState struct {
	NoteID      string
	Digest      Digest
	ProcessedAt time.Time
	Status      SyncStatus
}

// NoteError pairs a note ID with the error that failed its pipeline.
type NoteError struct {
	NoteID string
	Err    string
}

// RunReport aggregates per-status counts for a single run. It is created
// fresh per run and not persisted beyond the run's own summary.
type RunReport struct {
	Unchanged  int
	Ingested   int
	Errored    int
	DryRun     int
	Total      int
	StartedAt  time.Time
	FinishedAt time.Time
	Errors     []NoteError
}

// Record tallies one note outcome into the report.
func (r *RunReport) Record(noteID string, status SyncStatus, err error) {
	r.Total++
	switch status {
	case SyncStatusUnchanged:
		r.Unchanged++
	case SyncStatusIngested:
		r.Ingested++
	case SyncStatusDryRunRecorded:
		r.DryRun++
	case SyncStatusErrored:
		r.Errored++
		msg := "unknown error"
		if err != nil {
			msg = err.Error()
		}
		r.Errors = append(r.Errors, NoteError{NoteID: noteID, Err: msg})
	}
}

// Duration returns the wall-clock length of the run.
func (r *RunReport) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
