package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "Doe Media", []string{"doe", "media"}},
		{"suffix removed", "Doe Media Oy", []string{"doe", "media"}},
		{"punctuated suffix removed", "Doe Media Oy.", []string{"doe", "media"}},
		{"trailing punctuation stripped", "Acme, Consulting;", []string{"acme", "consulting"}},
		{"mixed case", "ACME consulting GmbH", []string{"acme", "consulting"}},
		{"suffix only", "Oy", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeName(tt.input)
			want := make(map[string]bool, len(tt.want))
			for _, tok := range tt.want {
				want[tok] = true
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestJaccard(t *testing.T) {
	set := func(toks ...string) map[string]bool {
		s := make(map[string]bool, len(toks))
		for _, tok := range toks {
			s[tok] = true
		}
		return s
	}

	assert.Equal(t, 1.0, jaccard(set("a", "b"), set("b", "a")))
	assert.Equal(t, 0.5, jaccard(set("a", "b"), set("a")))
	assert.InDelta(t, 1.0/3.0, jaccard(set("a", "b"), set("a", "c")), 1e-9)
	assert.Equal(t, 0.0, jaccard(set("a"), set("b")))
	assert.Equal(t, 0.0, jaccard(set(), set()))
}
