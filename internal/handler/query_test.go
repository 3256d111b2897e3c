package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawQueryValue_Parsing(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		present bool
	}{
		{"prompt=a+cat", "a+cat", true},
		{"prompt", "", true},
		{"&&prompt=x", "x", true},
		{"prompts=x", "", false},
		{"", "", false},
		{"p%72ompt=encoded+key", "encoded+key", true},
	}
	for _, tt := range tests {
		got, ok := rawQueryValue(tt.raw, "prompt")
		assert.Equal(t, tt.present, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
