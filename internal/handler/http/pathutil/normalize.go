package pathutil

import (
	"regexp"
	"strings"
)

type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// Evaluated in order, most specific first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/posts/[^/]+$`), Template: "/posts/:id"},
	{Pattern: regexp.MustCompile(`^/users/[^/]+$`), Template: "/users/:id"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath maps paths carrying ids to a template so metric labels stay
// bounded, e.g. /posts/12 -> /posts/:id. Query strings and a trailing slash
// are stripped; unknown paths pass through.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
