package v1

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// matchSearch reports whether any of the values matches the search, ignoring
// case. The search is a glob pattern where * matches any text. Without a *,
// the search matches anywhere in the value.
func matchSearch(search string, values ...string) bool {
	if search == "" {
		return true
	}

	pattern := strings.ToLower(search)
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}

	for _, value := range values {
		if glob.Glob(pattern, strings.ToLower(value)) {
			return true
		}
	}

	return false
}
