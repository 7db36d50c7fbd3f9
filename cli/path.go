package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/yex/pkg"
)

// cacheDir returns the per-user cache directory, falling back to the
// working directory when the platform cache root is unavailable.
var cacheDir = sync.OnceValue(func() string {
	root, err := os.UserCacheDir()
	if err != nil {
		return "." + pkg.Name
	}
	return filepath.Join(root, pkg.Name)
})

// historyFile returns the default REPL history path inside [cacheDir].
var historyFile = sync.OnceValue(func() string {
	return filepath.Join(cacheDir(), "history")
})
