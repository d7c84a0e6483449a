package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPointer(t *testing.T) {
	p := ToPointer(1.5)
	assert.Equal(t, 1.5, *p)
}

func TestCleanToValidUTF8(t *testing.T) {
	assert.Equal(t, "AAPL", CleanToValidUTF8("AA\xffPL"))
	assert.Equal(t, "M&M", CleanToValidUTF8("M&M"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "abc", max: 10, want: "abc"},
		{name: "cut", in: "abcdef", max: 3, want: "abc..."},
		{name: "disabled", in: "abcdef", max: 0, want: "abcdef"},
		{name: "rune boundary", in: "héllo", max: 2, want: "h..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}
