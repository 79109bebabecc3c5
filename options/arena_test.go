package options

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestWithArenaCapacity(t *testing.T) {
	tests := map[string]struct {
		defaultOptions   GeometryOptions
		inputCapacity    int
		expectedCapacity int
	}{
		"Negative capacity is ignored": {
			defaultOptions:   GeometryOptions{ArenaCapacity: 10},
			inputCapacity:    -5,
			expectedCapacity: 10,
		},
		"Zero capacity is ignored": {
			defaultOptions:   GeometryOptions{ArenaCapacity: 10},
			inputCapacity:    0,
			expectedCapacity: 10,
		},
		"Positive capacity overrides default": {
			defaultOptions:   GeometryOptions{ArenaCapacity: 10},
			inputCapacity:    256,
			expectedCapacity: 256,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			opts := ApplyGeometryOptions(tc.defaultOptions, WithArenaCapacity(tc.inputCapacity))
			assert.Equal(t, tc.expectedCapacity, opts.ArenaCapacity)
		})
	}
}
