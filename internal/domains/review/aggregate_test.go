package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"single score", []int{7}, 7},
		{"whole average", []int{8, 10, 6}, 8},
		{"fractional average rounds to two places", []int{1, 2, 2}, 1.67},
		{"extremes", []int{1, 10}, 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanScore(tt.scores)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 0.001)
		})
	}
}

func TestMeanScoreEmpty(t *testing.T) {
	// No reviews means no rating at all, not a zero rating.
	assert.Nil(t, MeanScore(nil))
	assert.Nil(t, MeanScore([]int{}))
}
