package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/pbirview/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no tabs", "#### Page: _Overview_", "#### Page: _Overview_"},
		{"leading tab", "\t1. card", "        1. card"},
		{"tab mid line stops at next column", "ab\tcd", "ab      cd"},
		{"tab on a stop advances a full width", "12345678\tx", "12345678        x"},
		{"consecutive tabs", "\t\tx", "                x"},
		{"column restarts after newline", "abc\t1\n\t2", "abc     1\n        2"},
		{"wide rune counts two cells", "日\tx", "日      x"},
		{"accented rune counts one cell", "é\tx", "é       x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, bubbletea.ExpandTabs(tt.input))
		})
	}
}
