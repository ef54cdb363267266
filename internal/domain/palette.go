package domain

import "math/rand/v2"

// TaskColors is the fixed palette used for task and client accents.
var TaskColors = []string{
	"#6366f1", // indigo
	"#f43f5e", // rose
	"#f59e0b", // amber
	"#10b981", // emerald
	"#0ea5e9", // sky
	"#8b5cf6", // violet
}

// PaletteColor picks colours round-robin, so consecutive indexes never repeat
// until the palette wraps.
func PaletteColor(i int) string {
	n := len(TaskColors)
	return TaskColors[(i%n+n)%n]
}

// RandomColor picks a palette colour using r, or the global source when r is nil.
func RandomColor(r *rand.Rand) string {
	if r == nil {
		return TaskColors[rand.IntN(len(TaskColors))]
	}
	return TaskColors[r.IntN(len(TaskColors))]
}
