package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{"dest only", []string{"site"}, false},
		{"src and dest", []string{"docs", "site"}, false},
		{"none", nil, true},
		{"three", []string{"a", "b", "c"}, true},
		{"empty dest", []string{""}, true},
		{"empty src", []string{"", "site"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Paths: tt.paths}
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_SrcDest(t *testing.T) {
	cfg := Config{Paths: []string{"site"}}
	require.Equal(t, DefaultSrc, cfg.Src())
	require.Equal(t, "site", cfg.Dest())

	cfg = Config{Paths: []string{"docs", "site"}}
	require.Equal(t, "docs", cfg.Src())
	require.Equal(t, "site", cfg.Dest())

	cfg = Config{}
	require.Equal(t, "", cfg.Dest())
}
