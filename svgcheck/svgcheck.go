// CLAUDE:SUMMARY Structural SVG validation with distinct exit codes: parse, root tag, dimensions, animation presence.
// Package svgcheck validates that a rendered SVG document is well-formed
// and animation-capable. Each failure mode maps to a distinct exit code
// so build scripts can branch on the result.
package svgcheck

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Exit codes returned by Check and surfaced by cmd/svgcheck.
const (
	CodeOK        = 0 // parsed, svg root, sized, animated
	CodeParse     = 2 // file is not well-formed XML
	CodeSize      = 3 // root lacks explicit width or height
	CodeRoot      = 4 // root element is not <svg>
	CodeAnimation = 5 // no <animate> element anywhere in the tree
)

// Check parses the file at path and asserts the minimal invariants of an
// animated SVG. It never fails past its own boundary: every outcome is an
// exit code plus one human-readable status line.
func Check(path string) (int, string) {
	f, err := os.Open(path)
	if err != nil {
		return CodeParse, fmt.Sprintf("ERROR: failed to parse SVG: %v", err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)

	var root *xml.StartElement
	hasAnimate := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return CodeParse, fmt.Sprintf("ERROR: failed to parse SVG: %v", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if root == nil {
			// Copy: the decoder reuses token memory.
			r := start.Copy()
			root = &r
		}
		if start.Name.Local == "animate" {
			hasAnimate = true
		}
	}

	if root == nil {
		return CodeParse, "ERROR: failed to parse SVG: no root element"
	}

	// Namespace-qualified names match on local name only.
	if !strings.EqualFold(root.Name.Local, "svg") {
		return CodeRoot, "ERROR: root element is not SVG"
	}
	if rootAttr(root, "width") == "" || rootAttr(root, "height") == "" {
		return CodeSize, "ERROR: SVG missing width/height"
	}
	if !hasAnimate {
		return CodeAnimation, "ERROR: no <animate> elements found; animation may not work"
	}
	return CodeOK, "OK: SVG parsed and contains animation"
}

func rootAttr(e *xml.StartElement, local string) string {
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
