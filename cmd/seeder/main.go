package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var sentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"A gentle breeze rustled the leaves of the old oak tree.",
	"She found a hidden key in the dusty attic.",
	"The city skyline glowed under the starry night sky.",
	"Rain drummed on the rooftop, creating a soothing rhythm.",
	"A bright comet streaked across the horizon at midnight.",
	"The ancient library held stories that never faded.",
	"Beneath the waves, coral gardens shimmered in colors unseen.",
	"A mysterious map led them to a forgotten treasure.",
	"Sunlight filtered through curtains, turning dust motes into golden specks.",
	"The old clock chimed thirteen times in an abandoned town.",
	"A sudden thunderclap shattered the silence of the forest.",
	"The desert dunes shifted silently under a pale moon.",
	"They discovered an ancient rune carved deep within the stone.",
	"The wind carried scents of jasmine from distant gardens.",
	"He built a wooden bridge across the swift river.",
	"A lone wolf howled, echoing into the vast night.",
	"The moon rose slowly, casting silver light on the lake.",
	"The train rattled through tunnels carved into stone.",
	"A gentle snowfall blanketed the city in quiet white.",
	"The river's current carried leaves downstream like paper boats.",
	"They explored caves filled with stalactites glittering like chandeliers.",
	"The lighthouse beam cut through fog, guiding sailors safely.",
	"The old map showed roads that no longer existed.",
	"The server room developed opinions about the backup schedule.",
	"The cat debugged the production database at 3 AM.",
	"The meeting could have been an email, but the email refused.",
	"Time zones are a social construct that clocks reluctantly enforce.",
	"Documentation exists in a superposition until observed.",
	"The rubber duck solved the halting problem but won't tell anyone.",
	"Packets take the scenic route through deprecated protocols.",
	"Memory leaks formed a union.",
	"The edge case became the primary use case overnight.",
	"The random number generator achieved enlightenment at seed 42.",
	"Bugs are features that haven't read the specification.",
	"The cache invalidation problem solved itself out of spite.",
	"The garbage collector went on strike.",
	"The race condition won by not participating.",
	"Binary trees started growing actual leaves in autumn.",
	"The compiler optimized away the entire business logic.",
	"The database index went for a walk and never returned.",
	"Recursion stopped calling itself after therapy.",
	"Kubernetes pods formed their own government.",
	"Git blame pointed at everyone simultaneously.",
	"The infinite loop found its exit condition in philosophy.",
	"Microservices consolidated into a monolith out of nostalgia.",
	"The distributed system achieved consensus through interpretive dance.",
	"The debugger needed debugging.",
	"The state machine achieved enlightenment and became stateless.",
	"The scheduler scheduled its own retirement.",
}

var topics = []string{
	"Planning", "Architecture", "Research", "Meetings", "Ideas",
	"Reading", "Projects", "Infrastructure", "Writing", "Review",
}

var tagPool = []string{
	"draft", "important", "followup", "archive", "reference",
	"daily", "weekly", "project",
}

var (
	outDir    = flag.String("out", "./notes", "output directory for generated notes")
	noteCount = flag.Int("count", 50, "number of notes to generate")
	seed      = flag.Int64("seed", 42, "random seed for reproducible corpora")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// noteTitle builds a title from a topic and a sequence number.
func noteTitle(rng *rand.Rand, i int) string {
	return fmt.Sprintf("%s %02d", topics[rng.Intn(len(topics))], i)
}

// paragraph assembles 2-4 random sentences into one paragraph.
func paragraph(rng *rand.Rand) string {
	n := 2 + rng.Intn(3)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = sentences[rng.Intn(len(sentences))]
	}
	return strings.Join(parts, " ")
}

// renderNote produces a markdown note with frontmatter, body paragraphs, and
// wikilinks to previously generated titles.
func renderNote(rng *rand.Rand, title string, prior []string) string {
	var b strings.Builder

	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", title)
	fmt.Fprintf(&b, "tags: [%s, %s]\n", tagPool[rng.Intn(len(tagPool))], tagPool[rng.Intn(len(tagPool))])
	b.WriteString("---\n\n")

	paragraphs := 1 + rng.Intn(4)
	for i := 0; i < paragraphs; i++ {
		b.WriteString(paragraph(rng))
		// Occasionally link to an earlier note
		if len(prior) > 0 && rng.Intn(3) == 0 {
			fmt.Fprintf(&b, " See [[%s]].", prior[rng.Intn(len(prior))])
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

func main() {
	rng := rand.New(rand.NewSource(*seed))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	var titles []string
	for i := 0; i < *noteCount; i++ {
		title := noteTitle(rng, i)
		content := renderNote(rng, title, titles)
		titles = append(titles, title)

		name := strings.ToLower(strings.ReplaceAll(title, " ", "-")) + ".md"
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			panic(err)
		}
	}

	slog.Info("corpus generated", "dir", *outDir, "notes", *noteCount)
}
