package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in    string
		value float64
		rest  string
	}{
		{"1.0\n", 1.0, ""},
		{"-2.5\n", -2.5, ""},
		{"0.0\n", 0.0, ""},
		{"12.3\n", 12.3, ""},
		{"-12.3\n", -12.3, ""},
		{"99.9\n", 99.9, ""},
		{"-99.9\n", -99.9, ""},
		{"3.7\nnext;1.2\n", 3.7, "next;1.2\n"},
	}

	for _, tc := range cases {
		value, rest := ParseValue([]byte(tc.in))
		assert.InDelta(t, tc.value, value, 1e-9, "input %q", tc.in)
		assert.Equal(t, tc.rest, string(rest), "input %q", tc.in)
	}
}
