package paths

import (
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/pkghelper/pkg/errors"
)

// Separator is the only path separator pkghelper understands
const Separator = "/"

// LookupFunc returns the value of an environment variable and whether it is set
type LookupFunc func(name string) (string, bool)

// Expand substitutes every variable reference in path using lookup.
// A nil lookup reads the process environment. Any reference to an unset
// variable fails with ErrUnresolvedVar naming the original path.
func Expand(path string, lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	// Only unset names are rejected; a bare "$" or a "$" inside a value stays literal
	missing := make(map[string]struct{})
	expanded := os.Expand(path, func(name string) string {
		value, ok := lookup(name)
		if !ok {
			missing[name] = struct{}{}
			return ""
		}
		return value
	})

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", errors.Newf(errors.ErrUnresolvedVar, "unset variable at: %s", path).
			WithDetail("path", path).
			WithDetail("variables", names)
	}

	return expanded, nil
}

// Resolve expands path and strips a single leading separator so the
// result can be joined under an arbitrary destination root.
func Resolve(path string, lookup LookupFunc) (string, error) {
	expanded, err := Expand(path, lookup)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(expanded, Separator), nil
}

// Join concatenates segments with the separator and collapses every run
// of separators into one.
func Join(segments ...string) string {
	joined := strings.Join(segments, Separator)
	for strings.Contains(joined, "//") {
		joined = strings.ReplaceAll(joined, "//", Separator)
	}
	return joined
}

// IsHidden reports whether a single path element is dot-prefixed
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// MapLookup adapts a map into a LookupFunc
func MapLookup(env map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		value, ok := env[name]
		return value, ok
	}
}
