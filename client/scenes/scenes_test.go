package scenes

import (
	"strings"
	"testing"

	"github.com/cbodonnell/hangman/pkg/hangman"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		width int
		want  string
	}{
		{
			name:  "empty",
			msg:   "",
			width: 10,
			want:  "",
		},
		{
			name:  "fits",
			msg:   "Picked so far: a",
			width: 30,
			want:  "Picked so far: a",
		},
		{
			name:  "wraps history",
			msg:   "Picked so far: a | b | c | d | e",
			width: 20,
			want:  "Picked so far: a | b\n| c | d | e",
		},
		{
			name:  "long word stays whole",
			msg:   "mississippi river",
			width: 5,
			want:  "mississippi\nriver",
		},
		{
			name:  "no width",
			msg:   "a b",
			width: 0,
			want:  "a b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.msg, tt.width)
			assert.Equal(t, tt.want, got)
			for _, line := range strings.Split(got, "\n") {
				if tt.width <= 0 || !strings.Contains(line, " ") {
					continue
				}
				assert.LessOrEqual(t, len(line), tt.width)
			}
		})
	}
}

func TestDifficultyLabel(t *testing.T) {
	for _, d := range hangman.Difficulties {
		label := difficultyLabel(d)
		assert.Equal(t, strings.ToLower(label), d.String())
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "miss", pluralize(1, "miss", "misses"))
	assert.Equal(t, "misses", pluralize(0, "miss", "misses"))
	assert.Equal(t, "misses", pluralize(2, "miss", "misses"))
}
