package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

func TestParseProjectType(t *testing.T) {
	tests := []struct {
		lang string
		want appdetect.ProjectType
	}{
		{"rust", appdetect.RustNormal},
		{"Rust", appdetect.RustNormal},
		{"rust-wasm", appdetect.RustWasm},
		{"wasm", appdetect.RustWasm},
		{"javascript", appdetect.JavaScript},
		{"js", appdetect.JavaScript},
		{"typescript", appdetect.TypeScript},
		{"ts", appdetect.TypeScript},
		{"nodejs", appdetect.NodeJs},
		{"node", appdetect.NodeJs},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			got, err := parseProjectType(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProjectTypeUnsupported(t *testing.T) {
	_, err := parseProjectType("cobol")
	require.Error(t, err)
}
