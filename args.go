package rubygoals

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// ParseArgs splits each of the given argument strings with shell word rules
// and concatenates the results in order. Empty strings contribute nothing.
func ParseArgs(sources ...string) ([]string, error) {
	var args []string
	for _, source := range sources {
		if source == "" {
			continue
		}

		words, err := shellwords.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("failed to parse arguments %q: %w", source, err)
		}

		args = append(args, words...)
	}

	return args, nil
}
