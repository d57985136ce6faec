package window

import (
	"math"

	"github.com/rewired-gh/surfbot/internal/models"
)

// Compass is one of the eight compass points with its arrow glyph.
type Compass struct {
	Name  string
	Arrow string
}

var compassPoints = [8]Compass{
	{"N", "⬆️"},
	{"NE", "↗️"},
	{"E", "➡️"},
	{"SE", "↘️"},
	{"S", "⬇️"},
	{"SW", "↙️"},
	{"W", "⬅️"},
	{"NW", "↖️"},
}

// CompassToward converts a wind source direction into the compass point the
// wind blows toward. Each point covers [center-22.5°, center+22.5°).
func CompassToward(sourceDeg float64) Compass {
	toward := models.NormalizeDegrees(sourceDeg + 180)
	idx := int(math.Floor((toward+22.5)/45)) % len(compassPoints)
	return compassPoints[idx]
}
