// The globre command compiles a glob pattern, prints the equivalent
// anchored regex and the strategy a multi-pattern engine would use, and
// matches any further arguments against the pattern.
//
// Example:
//
//	$ globre '**/*.go' pattern.go cmd/globre/globre.go README.md
//	regex:    (?s)^(?:[/\\]?|.*[/\\]).*\.go$
//	strategy: globre.RequiredExtensionStrategy
//	match:    pattern.go
//	match:    cmd/globre/globre.go
package main

import (
	"fmt"
	"os"

	"github.com/globre/globre"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s pattern [path...]\n", os.Args[0])
		os.Exit(1)
	}

	p, err := globre.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't parse pattern %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	fmt.Printf("regex:    %s\n", p.Regex())
	fmt.Printf("strategy: %T\n", globre.NewMatchStrategy(p))

	m := p.CompileMatcher()
	for _, path := range os.Args[2:] {
		if m.IsMatch(path) {
			fmt.Printf("match:    %s\n", path)
		}
	}
}
