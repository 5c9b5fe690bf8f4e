package styles

// Status glyphs shown in task listings.
var (
	IconDone    = "✔️"
	IconPending = "❌"
)
