package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Science Fiction":     "science-fiction",
		"Rock & Roll":         "rock-roll",
		"  Drama  ":           "drama",
		"Café Culture":        "cafe-culture",
		"Already-Slugged":     "already-slugged",
		"Multiple   Spaces!!": "multiple-spaces",
	}

	for input, want := range cases {
		assert.Equal(t, want, GenerateSlug(input), "input %q", input)
	}
}
