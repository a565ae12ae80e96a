// Package chunker splits note text into bounded-size, order-preserving
// segments sized for the embedding model's input limit.
//
// Chunking is deterministic: the same (content, max chars) input always
// produces the same chunk count, ordering, and bytes. The orchestrator
// relies on this to reuse embeddings and to diff note revisions.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/notegraph/core"
)

const (
	// DefaultMaxChars is the chunk budget used when none is configured.
	DefaultMaxChars = 2000

	// separator joins paragraphs accumulated into the same chunk.
	separator = "\n\n"
)

var paragraphRe = regexp.MustCompile(`\n[ \t]*\n+`)

// Chunker splits text on paragraph boundaries, greedily packing consecutive
// paragraphs into chunks of at most maxChars runes.
type Chunker struct {
	maxChars int
}

// New creates a Chunker with the given rune budget per chunk.
// A non-positive budget falls back to DefaultMaxChars.
func New(maxChars int) *Chunker {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Chunker{maxChars: maxChars}
}

// MaxChars returns the configured per-chunk rune budget.
func (c *Chunker) MaxChars() int {
	return c.maxChars
}

// Split chunks content into an ordered sequence of chunks for noteID.
// Empty or whitespace-only content yields an empty sequence; such notes are
// skipped downstream rather than treated as errors.
//
// Paragraphs are blank-line separated. Consecutive paragraphs accumulate into
// a chunk while they fit within the budget (including the joining separator).
// A single paragraph that alone exceeds the budget is hard-truncated at the
// budget — lossy by policy — and its remainder continues as a fresh unit.
func (c *Chunker) Split(noteID, content string) []core.Chunk {
	var texts []string
	var buf strings.Builder
	bufLen := 0 // rune length of buf

	flush := func() {
		if bufLen == 0 {
			return
		}
		texts = append(texts, buf.String())
		buf.Reset()
		bufLen = 0
	}

	for _, para := range paragraphRe.Split(content, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		paraLen := utf8.RuneCountInString(para)

		// Oversized paragraph: flush whatever accumulated, then emit
		// budget-sized pieces; the tail continues as a fresh unit.
		for paraLen > c.maxChars {
			flush()
			runes := []rune(para)
			texts = append(texts, string(runes[:c.maxChars]))
			para = strings.TrimSpace(string(runes[c.maxChars:]))
			paraLen = utf8.RuneCountInString(para)
		}
		if paraLen == 0 {
			continue
		}

		sepLen := 0
		if bufLen > 0 {
			sepLen = utf8.RuneCountInString(separator)
		}
		if bufLen+sepLen+paraLen > c.maxChars {
			flush()
			sepLen = 0
		}
		if sepLen > 0 {
			buf.WriteString(separator)
			bufLen += sepLen
		}
		buf.WriteString(para)
		bufLen += paraLen
	}
	flush()

	chunks := make([]core.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = core.Chunk{
			NoteID:   noteID,
			Index:    i,
			Text:     text,
			TextHash: core.DigestContent(text),
		}
	}
	return chunks
}
