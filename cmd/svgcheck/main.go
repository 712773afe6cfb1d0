// Command svgcheck verifies that a generated SVG is well-formed and
// animated. Intended for build checks: the exit code distinguishes the
// failure kinds (2 parse, 3 dimensions, 4 root tag, 5 animation).
//
// Usage:
//
//	svgcheck assets/life.svg
package main

import (
	"fmt"
	"os"

	"github.com/hazyhaar/lifegrid/svgcheck"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: svgcheck path/to.svg")
		os.Exit(1)
	}

	code, msg := svgcheck.Check(os.Args[1])
	fmt.Println(msg)
	os.Exit(code)
}
