package shared_test

import (
	"reservo/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "limiter", expected: "limiter"},
		{name: "with parts", prefix: "limiter", parts: []string{"10.0.0.1", "curl"}, expected: "limiter:10.0.0.1:curl"},
		{name: "empty parts skipped", prefix: "limiter", parts: []string{"", "curl"}, expected: "limiter:curl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}
