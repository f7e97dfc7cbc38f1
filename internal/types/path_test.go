package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyPath(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  KeyPath
	}{
		{name: "bare key", value: "total", want: Key("total")},
		{name: "nested", value: "fuel-used/natural-gas", want: KeyPath{"fuel-used", "natural-gas"}},
		{name: "blank segments", value: " a//b/ ", want: KeyPath{"a", "b"}},
		{name: "empty", value: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeyPath(tt.value))
		})
	}
}

func TestKeyPathString(t *testing.T) {
	assert.Equal(t, "electric-end-use/space-heating", KeyPath{"electric-end-use", "space-heating"}.String())
	assert.Equal(t, "", KeyPath(nil).String())
}

func TestResolutionString(t *testing.T) {
	assert.Equal(t, "B6=1.182e+08", Resolved("B6", 118_200_000).String())
	partial := Partial(Remainder{Keys: []string{"total", "main"}}, Remainder{Leaf: "B"})
	assert.Equal(t, "([total, main], B)", partial.String())
	assert.False(t, partial.IsResolved())
}
