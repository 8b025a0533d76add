package slug

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrExhausted = errors.New("could not find a free slug")

	invalidChars = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	separators   = regexp.MustCompile(`[\s_]+`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// maxProbes bounds the uniqueness loop. A title would need this many
// near-identical siblings before we give up.
const maxProbes = 1000

// Generate derives a URL-safe slug from a title.
// "Hello, World!" -> "hello-world". Empty input yields an empty string;
// callers must reject empty slugs.
func Generate(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ExistsFunc reports whether a candidate slug is already taken. The caller
// scopes it to the right collection and, on updates, excludes the entity's
// own row.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// EnsureUnique returns base unchanged when it is free, otherwise the first
// free candidate among base-2, base-3, ...
//
// The probe is best-effort only: two concurrent creates can both see the same
// candidate as free. The unique index on the slug column is the backstop, and
// the loser of that race gets a conflict error at persist time.
func EnsureUnique(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	taken, err := exists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; i <= maxProbes; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: gave up after %d probes for %q", ErrExhausted, maxProbes, base)
}
