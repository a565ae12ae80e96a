package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_EmptyContent(t *testing.T) {
	c := New(100)
	assert.Empty(t, c.Split("n1", ""))
	assert.Empty(t, c.Split("n1", "   \n\n   \n"))
}

func TestSplit_SingleParagraph(t *testing.T) {
	c := New(100)
	chunks := c.Split("n1", "a short paragraph")

	require.Len(t, chunks, 1)
	assert.Equal(t, "n1", chunks[0].NoteID)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, "a short paragraph", chunks[0].Text)
	assert.True(t, chunks[0].TextHash.Valid())
}

func TestSplit_PacksParagraphsGreedily(t *testing.T) {
	c := New(30)
	content := "aaaaaaaaaa\n\nbbbbbbbbbb\n\ncccccccccc"

	// 10 + 2 + 10 = 22 fits; adding "\n\n" + 10 more would make 34 > 30.
	chunks := c.Split("n1", content)
	require.Len(t, chunks, 2)
	assert.Equal(t, "aaaaaaaaaa\n\nbbbbbbbbbb", chunks[0].Text)
	assert.Equal(t, "cccccccccc", chunks[1].Text)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 1, chunks[1].Index)
}

func TestSplit_OversizedParagraphTruncates(t *testing.T) {
	c := New(10)
	para := strings.Repeat("x", 25)

	chunks := c.Split("n1", para)
	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("x", 10), chunks[0].Text)
	assert.Equal(t, strings.Repeat("x", 10), chunks[1].Text)
	assert.Equal(t, strings.Repeat("x", 5), chunks[2].Text)
}

func TestSplit_OversizedParagraphFlushesBuffer(t *testing.T) {
	c := New(10)
	content := "abc\n\n" + strings.Repeat("y", 12)

	chunks := c.Split("n1", content)
	require.Len(t, chunks, 3)
	assert.Equal(t, "abc", chunks[0].Text)
	assert.Equal(t, strings.Repeat("y", 10), chunks[1].Text)
	assert.Equal(t, "yy", chunks[2].Text)
}

func TestSplit_NoBlankLines(t *testing.T) {
	c := New(10)
	// Single-newline lines form one paragraph, hard-split at the budget.
	content := "one\ntwo\nthree\nfour"

	chunks := c.Split("n1", content)
	require.NotEmpty(t, chunks)
	for _, ch := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(ch.Text), 10)
	}
}

func TestSplit_MultiByteRunesNeverSplit(t *testing.T) {
	c := New(4)
	content := strings.Repeat("héllo ", 3)

	for _, ch := range c.Split("n1", content) {
		assert.True(t, utf8.ValidString(ch.Text))
		assert.LessOrEqual(t, utf8.RuneCountInString(ch.Text), 4)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	c := New(50)
	content := "first paragraph here\n\nsecond paragraph with more words\n\n" +
		strings.Repeat("long paragraph ", 20) + "\n\nlast one"

	first := c.Split("n1", content)
	second := c.Split("n1", content)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Index, second[i].Index)
		assert.Equal(t, first[i].Text, second[i].Text)
		assert.Equal(t, first[i].TextHash, second[i].TextHash)
	}
}

func TestSplit_IndexOrdering(t *testing.T) {
	c := New(15)
	content := strings.Repeat("para word\n\n", 10)

	chunks := c.Split("n1", content)
	for i, ch := range chunks {
		assert.Equal(t, i, ch.Index)
	}
}

func TestNew_DefaultBudget(t *testing.T) {
	assert.Equal(t, DefaultMaxChars, New(0).MaxChars())
	assert.Equal(t, DefaultMaxChars, New(-5).MaxChars())
	assert.Equal(t, 128, New(128).MaxChars())
}
