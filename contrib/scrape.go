// CLAUDE:SUMMARY Decodes the contribution calendar DOM: first <svg>, week <g> columns, y-offset row decode, transpose.
package contrib

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/hazyhaar/lifegrid/life"
)

const (
	// gridRows is the fixed height of a contribution calendar: one row
	// per weekday.
	gridRows = 7
	// rowPitch is the vertical distance between day rects inside a week
	// group.
	rowPitch = 10
)

// ErrNoGrid is returned when the page contains no contributions SVG.
var ErrNoGrid = errors.New("contrib: no contributions svg found")

// ErrNoColumns is returned when the SVG yields no week columns.
var ErrNoColumns = errors.New("contrib: no contribution columns parsed")

// parseGrid extracts the contribution calendar from a page body.
// GitHub renders the calendar as an <svg> holding one <g> per week, each
// with up to 7 <rect> days ordered top to bottom.
func parseGrid(page []byte) (life.Grid, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	svg := findSVG(doc)
	if svg == nil {
		return nil, ErrNoGrid
	}

	// Phase 1: accumulate fixed-height columns, week by week.
	var columns [][gridRows]int
	collectColumns(svg, &columns)
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	// Phase 2: transpose column-major weeks into a row-major grid.
	grid := make(life.Grid, gridRows)
	for r := range grid {
		grid[r] = make([]int, len(columns))
		for c := range columns {
			grid[r][c] = columns[c][r]
		}
	}
	return grid, nil
}

// findSVG returns the first svg element in document order.
func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "svg") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if svg := findSVG(c); svg != nil {
			return svg
		}
	}
	return nil
}

// collectColumns walks the SVG subtree appending one column per week
// group. A week group is a <g> with at least one direct <rect> child;
// wrapper groups that only hold other groups are descended into, and
// groups with no rects at all are skipped.
func collectColumns(n *html.Node, columns *[][gridRows]int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if strings.EqualFold(c.Data, "g") {
			if col, ok := decodeColumn(c); ok {
				*columns = append(*columns, col)
				continue
			}
		}
		collectColumns(c, columns)
	}
}

// decodeColumn reads one week group. Reports false when the group has no
// direct rect children.
func decodeColumn(g *html.Node) ([gridRows]int, bool) {
	var col [gridRows]int
	found := false
	position := 0
	for c := g.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || !strings.EqualFold(c.Data, "rect") {
			continue
		}
		row := rowIndex(c, position)
		if row >= 0 && row < gridRows && attrInt(c, 0, "data-count", "data-level") > 0 {
			col[row] = 1
		}
		found = true
		position++
	}
	return col, found
}

// rowIndex decodes a day rect's row from its y offset (offset / rowPitch,
// rounded down). The offset is presentation data with no semantic
// guarantee, so this is the single place to fix if the upstream layout
// changes. A missing or unparsable y falls back to the rect's position
// within its group.
func rowIndex(n *html.Node, position int) int {
	y, ok := attr(n, "y")
	if !ok {
		return position
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return position
	}
	return int(f) / rowPitch
}

// attr returns the value of the named attribute.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// attrInt returns the first present attribute among keys parsed as an
// integer. Absent or non-numeric values yield def.
func attrInt(n *html.Node, def int, keys ...string) int {
	for _, key := range keys {
		v, ok := attr(n, key)
		if !ok {
			continue
		}
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return i
	}
	return def
}
