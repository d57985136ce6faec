package window

import (
	"time"

	"github.com/rewired-gh/surfbot/internal/models"
)

// Group partitions time-ordered records into windows in a single pass. A
// record extends the current window only if it shares the window's category
// and falls exactly one interval after the previous record; anything else
// starts a new window. Non-adjacent windows are never merged.
func Group(records []models.IntervalRecord, interval time.Duration) []models.Window {
	if len(records) == 0 {
		return nil
	}

	var windows []models.Window
	current := []models.IntervalRecord{records[0]}
	for _, r := range records[1:] {
		prev := current[len(current)-1]
		sameCategory := r.Category == prev.Category
		contiguous := r.LocalTime.Sub(prev.LocalTime) == interval
		if sameCategory && contiguous {
			current = append(current, r)
			continue
		}
		windows = append(windows, models.Window{Records: current})
		current = []models.IntervalRecord{r}
	}
	windows = append(windows, models.Window{Records: current})

	return windows
}
