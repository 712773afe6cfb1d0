// CLAUDE:SUMMARY Flip-book SVG assembly: static dead-cell layer plus per-frame overlays with discrete SMIL opacity.
// Package render assembles an animated SVG from a sequence of Life
// generations using the flip-book technique: a static background of dead
// cells, plus one overlay group per frame whose opacity is toggled on a
// shared discrete-step clock.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hazyhaar/lifegrid/life"
)

// ErrNoFrames is returned when Render is given an empty frame sequence.
var ErrNoFrames = errors.New("render: no frames to render")

// Style holds the rendering parameters for one document.
type Style struct {
	Cell          int     // cell edge in px
	Gap           int     // gap between cells in px
	AliveColor    string  // fill for live cells
	DeadColor     string  // fill for the background grid
	FrameDuration float64 // seconds each frame stays visible
}

func (s *Style) defaults() {
	if s.Cell <= 0 {
		s.Cell = 10
	}
	if s.Gap <= 0 {
		s.Gap = 2
	}
	if s.AliveColor == "" {
		s.AliveColor = "#2ea043"
	}
	if s.DeadColor == "" {
		s.DeadColor = "#ebedf0"
	}
	if s.FrameDuration <= 0 {
		s.FrameDuration = 0.08
	}
}

// Render produces a standalone animated SVG document from frames. All
// frames must share frame 0's dimensions. The full animation cycle lasts
// FrameDuration seconds per frame and repeats indefinitely.
func Render(frames []life.Grid, style Style) (string, error) {
	if len(frames) == 0 {
		return "", ErrNoFrames
	}
	style.defaults()

	rows := frames[0].Rows()
	cols := frames[0].Cols()
	pitch := style.Cell + style.Gap
	width := cols*pitch - style.Gap
	height := rows*pitch - style.Gap

	rect := func(x, y int, fill string) string {
		return fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="2" ry="2" fill="%s"/>`,
			x, y, style.Cell, style.Cell, fill)
	}

	var parts []string
	parts = append(parts, `<?xml version="1.0" encoding="UTF-8"?>`)
	parts = append(parts, fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		width, height, width, height))

	// Static background: every cell in the dead color, never animated.
	var bg strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			bg.WriteString(rect(c*pitch, r*pitch, style.DeadColor))
		}
	}
	parts = append(parts, fmt.Sprintf(`<g id="bg">%s</g>`, bg.String()))

	// One shared clock for all frame groups: F+1 equal keyTime intervals
	// over the whole cycle, so exactly one group is opaque at any instant.
	dur := fmt.Sprintf("%.3fs", style.FrameDuration*float64(len(frames)))
	keyTimes := make([]string, len(frames)+1)
	for i := range keyTimes {
		keyTimes[i] = keyTime(i, len(frames))
	}
	keyTimesStr := strings.Join(keyTimes, ";")

	for k, frame := range frames {
		var cells strings.Builder
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if frame[r][c] == 1 {
					cells.WriteString(rect(c*pitch, r*pitch, style.AliveColor))
				}
			}
		}

		// Opaque only on this frame's interval; the closing boundary at
		// 1.0 is 0 so the loop restarts on frame 0 with a crisp cut.
		values := make([]string, len(frames)+1)
		for i := range values {
			if i == k {
				values[i] = "1"
			} else {
				values[i] = "0"
			}
		}

		initial := 0
		if k == 0 {
			initial = 1
		}
		parts = append(parts, fmt.Sprintf(
			`<g id="f%d" opacity="%d">%s<animate attributeName="opacity" dur="%s" repeatCount="indefinite" calcMode="discrete" keyTimes="%s" values="%s"/></g>`,
			k, initial, cells.String(), dur, keyTimesStr, strings.Join(values, ";")))
	}

	parts = append(parts, `</svg>`)
	return strings.Join(parts, "\n"), nil
}

// keyTime formats boundary i of a cycle split into frames intervals.
// The 0 and 1 endpoints are emitted bare; interior values drop redundant
// trailing zeros.
func keyTime(i, frames int) string {
	if i == 0 {
		return "0"
	}
	if i == frames {
		return "1"
	}
	s := strconv.FormatFloat(float64(i)/float64(frames), 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// WriteFile writes the rendered document to path, creating parent
// directories as needed. The write happens only after the whole document
// is assembled, so a failed run never leaves a partial file.
func WriteFile(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
