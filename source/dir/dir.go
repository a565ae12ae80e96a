// Package dir implements source.Connector backed by a directory of
// Markdown and plain-text note files.
package dir

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poiesic/notegraph/core"
	"github.com/poiesic/notegraph/source"
)

// Connector lists notes from a local directory tree.
// Note IDs are slash-separated paths relative to the root, so they stay
// stable across machines and operating systems.
type Connector struct {
	root string // absolute path to the notes directory
}

var _ source.Connector = (*Connector)(nil)

// New creates a connector rooted at the given directory.
// The directory must already exist.
func New(root string) (*Connector, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("source: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("source: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source: root is not a directory: %s", abs)
	}
	return &Connector{root: abs}, nil
}

// ListNotes walks the root and returns a note for every .md and .txt file,
// ordered by ID for a deterministic-per-call listing.
func (c *Connector) ListNotes(ctx context.Context) ([]*core.Note, error) {
	var notes []*core.Note

	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			// Skip hidden directories such as .git or .obsidian.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") && path != c.root {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("source: read %s: %w", rel, err)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		id := filepath.ToSlash(rel)
		parsed := parseNote(data)

		title := parsed.Title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(path), ext)
		}

		notes = append(notes, &core.Note{
			ID:         id,
			Title:      title,
			Content:    parsed.Body,
			ModifiedAt: info.ModTime().UTC(),
			Tags:       parsed.Tags,
			Links:      parsed.Links,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source: list notes: %w", err)
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}
