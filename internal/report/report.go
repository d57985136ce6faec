// Package report renders scored surf windows as plain text and picks out the
// windows worth a notification.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rewired-gh/surfbot/internal/window"
)

const (
	startFmt = "Mon Jan 02, 03:04 PM"
	clockFmt = "03:04 PM"

	perfectMarker = "🔥 "
	emptyMessage  = "No qualifying conditions forecasted."
	worthyHeading = "*🏄 Worthy Surf Blocks This Week:*"
	unavailable   = "Data unavailable"
)

var windLabels = map[window.WindQuality]string{
	window.WindClean:      "✅ Offshore winds - clean conditions",
	window.WindChoppy:     "⚠️ Onshore winds - likely choppy",
	window.WindCrossShore: "↔️ Cross-shore winds - moderate drift",
}

// DaylightSource provides sunrise and sunset for the day containing t.
type DaylightSource interface {
	Hours(t time.Time) (rise, set time.Time, ok bool)
}

// Formatter renders windows for one spot.
type Formatter struct {
	SpotName string
	Days     int
	Interval time.Duration
	Daylight DaylightSource // optional
}

// Block is one rendered window.
type Block struct {
	Conditions window.Conditions
	Text       string
	Worthy     bool
}

// Report is the rendered result of one run.
type Report struct {
	Header string
	Blocks []Block
}

// Render formats every window in order.
func (f *Formatter) Render(conditions []window.Conditions) *Report {
	r := &Report{
		Header: fmt.Sprintf("🏄 Best Surf Times at %s (Next %d Days)", f.SpotName, f.Days),
		Blocks: make([]Block, 0, len(conditions)),
	}
	for _, c := range conditions {
		r.Blocks = append(r.Blocks, Block{
			Conditions: c,
			Text:       f.block(c),
			Worthy:     c.GoodCombo,
		})
	}
	return r
}

// block renders one window as a multi-line summary ending in a newline.
func (f *Formatter) block(c window.Conditions) string {
	var b strings.Builder

	marker := ""
	if c.Perfect {
		marker = perfectMarker
	}
	w := c.Window
	fmt.Fprintf(&b, "%s%s to %s - %s (Rating: %.1f)\n",
		marker,
		w.Start().Format(startFmt),
		w.End(f.Interval).Format(clockFmt),
		w.Category().Label(),
		w.Rating())

	fmt.Fprintf(&b, "  🌊 %.1f-%.1f ft waves\n", c.WaveMin, c.WaveMax)
	b.WriteString("  🌬️ Wind: " + windLine(c) + "\n")

	if period, ok := c.Period.Get(); ok {
		fmt.Fprintf(&b, "  📈 Swell: %.1f s period\n", period)
	} else {
		b.WriteString("  📈 Swell: " + unavailable + "\n")
	}

	b.WriteString("  🌊 Tide: " + tideLine(c) + "\n")

	if f.Daylight != nil {
		if rise, set, ok := f.Daylight.Hours(w.Start()); ok {
			loc := w.Start().Location()
			fmt.Fprintf(&b, "  ☀️ Daylight: %s to %s\n", rise.In(loc).Format(clockFmt), set.In(loc).Format(clockFmt))
		}
	}

	return b.String()
}

func windLine(c window.Conditions) string {
	speed, okSpeed := c.WindSpeed.Get()
	dir, okDir := c.WindDirection.Get()
	if !okSpeed || !okDir {
		return unavailable
	}
	line := fmt.Sprintf("%.1f kts @ %.0f° %s %s", speed, dir, c.Compass.Arrow, c.Compass.Name)
	if label := windLabels[c.WindQuality]; label != "" {
		line += " " + label
	}
	return line
}

func tideLine(c window.Conditions) string {
	if !c.Tide.Available {
		return unavailable
	}
	line := fmt.Sprintf("%s (%.1fft → %.1fft)", c.Tide.Direction(), c.Tide.StartHeight, c.Tide.EndHeight)
	if c.IdealTide {
		line += " ✅ Ideal: Low tide rising"
	}
	return line
}

// String returns the full printable report.
func (r *Report) String() string {
	var b strings.Builder
	b.WriteString(r.Header + "\n\n")
	if len(r.Blocks) == 0 {
		b.WriteString(emptyMessage + "\n")
		return b.String()
	}
	for i, block := range r.Blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.Text)
	}
	return b.String()
}

// Worthy returns the text of every block that passed the notification gate.
func (r *Report) Worthy() []string {
	var texts []string
	for _, block := range r.Blocks {
		if block.Worthy {
			texts = append(texts, block.Text)
		}
	}
	return texts
}

// Notification returns the message to deliver, and false when no window is
// worthy and nothing should be sent.
func (r *Report) Notification() (string, bool) {
	worthy := r.Worthy()
	if len(worthy) == 0 {
		return "", false
	}
	return worthyHeading + "\n" + strings.Join(worthy, "\n"), true
}
