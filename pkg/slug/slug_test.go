package slug

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello, World!", "hello-world"},
		{"already a slug", "my-project", "my-project"},
		{"surrounding whitespace", "  Trimmed Title  ", "trimmed-title"},
		{"underscores become hyphens", "snake_case_title", "snake-case-title"},
		{"collapsed separator runs", "a   lot \t of   space", "a-lot-of-space"},
		{"special chars stripped", "C++ & Go: A (Biased) Comparison?", "c-go-a-biased-comparison"},
		{"digits kept", "Top 10 Tools of 2024", "top-10-tools-of-2024"},
		{"leading and trailing hyphens trimmed", "--edgy title--", "edgy-title"},
		{"only special chars", "!!!???", ""},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Generate(tc.input))
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "hello-world", Generate("Hello, World!"))
	}
}

func existsIn(taken map[string]bool) ExistsFunc {
	return func(_ context.Context, candidate string) (bool, error) {
		return taken[candidate], nil
	}
}

func TestEnsureUnique_BaseFree(t *testing.T) {
	got, err := EnsureUnique(context.Background(), "my-project", existsIn(map[string]bool{}))
	require.NoError(t, err)
	assert.Equal(t, "my-project", got)
}

func TestEnsureUnique_Probes(t *testing.T) {
	taken := map[string]bool{"hello-world": true}

	got, err := EnsureUnique(context.Background(), "hello-world", existsIn(taken))
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2", got)

	taken["hello-world-2"] = true
	got, err = EnsureUnique(context.Background(), "hello-world", existsIn(taken))
	require.NoError(t, err)
	assert.Equal(t, "hello-world-3", got)
}

func TestEnsureUnique_SkipsToFirstFree(t *testing.T) {
	taken := map[string]bool{
		"post": true, "post-2": true, "post-3": true, "post-5": true,
	}
	got, err := EnsureUnique(context.Background(), "post", existsIn(taken))
	require.NoError(t, err)
	assert.Equal(t, "post-4", got)
}

func TestEnsureUnique_Exhausted(t *testing.T) {
	everythingTaken := func(_ context.Context, _ string) (bool, error) {
		return true, nil
	}
	_, err := EnsureUnique(context.Background(), "popular", everythingTaken)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestEnsureUnique_PropagatesExistsError(t *testing.T) {
	boom := fmt.Errorf("connection reset")
	failing := func(_ context.Context, _ string) (bool, error) {
		return false, boom
	}
	_, err := EnsureUnique(context.Background(), "whatever", failing)
	assert.ErrorIs(t, err, boom)
}
