package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath turns a user-supplied corpus location into a local path.
// A file:// prefix is removed and a leading "~/" expands to the home
// directory. Anything else, including "", is returned as is.
func ResolvePath(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
