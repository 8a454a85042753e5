package source

import (
	"fmt"
	"path/filepath"
)

// ExpandInputs resolves command-line inputs to file paths in the order given.
// A glob contributes its matches in lexical order and a path named twice is
// read once. An argument matching nothing is kept as is, so opening it later
// reports the missing file.
func ExpandInputs(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	seen := make(map[string]struct{}, len(args))

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", arg, err)
		}
		if matches == nil {
			matches = []string{arg}
		}

		for _, m := range matches {
			p := filepath.Clean(m)
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}

	return paths, nil
}
