package view

// Headline is the text the App view always shows in its level 1 heading
const Headline = "Hello Skeleton App"

// Tagline is the caption under the headline
const Tagline = "Go • Bubble Tea • Lip Gloss • Cobra"

// App returns the application's view: a full-viewport centering container
// holding a glyph, the headline and a caption.
// Every call builds a new tree with the same structure.
func App() *Node {
	return Container(
		[]string{"min-h-dvh", "grid", "place-items-center"},
		Container(
			[]string{"text-center"},
			Glyph("💀", "text-6xl"),
			Heading(1, Headline, "text-3xl", "font-bold"),
			Caption(Tagline, "mt-2", "opacity-80"),
		),
	)
}
