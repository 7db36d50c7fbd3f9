package cmd

import "errors"

// ErrOpenScript indicates the script argument could not be opened.
var ErrOpenScript = errors.New("failed to open script")
