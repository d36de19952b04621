package gauge

import "github.com/google/uuid"

// newID returns a random identifier unique across gauges in the process,
// so SVG ids derived from it never collide on a shared page.
func newID() string {
	return uuid.NewString()
}

func maskID(id string) string     { return "mask-" + id }
func gradientID(id string) string { return "gradient-" + id }
func markerID(id string) string   { return "end-" + id }
