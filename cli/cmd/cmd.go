package cmd

import (
	"fmt"
	"io"
	"os"
)

// stdinPath is the script argument that selects standard input.
const stdinPath = "-"

// openScript returns a reader for the script at path, or standard input
// when path is [stdinPath]. The returned closer is a no-op for stdin.
func openScript(path string) (io.ReadCloser, error) {
	if path == stdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenScript, err)
	}
	return f, nil
}
