package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/flowstation/internal/config"
)

func parsed(t *testing.T, args ...string) (*cobra.Command, *streamFlags, *staticFlags) {
	t.Helper()
	var sf streamFlags
	var st staticFlags
	cmd := &cobra.Command{Use: "x"}
	sf.register(cmd, "")
	st.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &sf, &st
}

func TestStreamFlags_Apply(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want config.StreamConfig
	}{
		{
			name: "untouched",
			want: config.DefaultConfig().Inlet,
		},
		{
			name: "tp",
			args: []string{"--tt", "1100", "--pt", "400", "--w", "50"},
			want: config.StreamConfig{W: 50, Total: config.TotalConfig{Mode: "tp", T: 1100, P: 400}},
		},
		{
			name: "hp inferred",
			args: []string{"--ht", "120"},
			want: config.StreamConfig{W: config.DefaultW, Total: config.TotalConfig{Mode: "hp", T: config.DefaultTt, P: config.DefaultPt, H: 120}},
		},
		{
			name: "hs inferred",
			args: []string{"--ht", "120", "--st", "1.7", "--war", "0.01"},
			want: config.StreamConfig{W: config.DefaultW, WAR: 0.01, Total: config.TotalConfig{Mode: "hs", T: config.DefaultTt, P: config.DefaultPt, H: 120, S: 1.7}},
		},
		{
			name: "explicit mode wins",
			args: []string{"--mode", "sp", "--ht", "120", "--st", "1.7"},
			want: config.StreamConfig{W: config.DefaultW, Total: config.TotalConfig{Mode: "sp", T: config.DefaultTt, P: config.DefaultPt, H: 120, S: 1.7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, sf, _ := parsed(t, tt.args...)
			sc := config.DefaultConfig().Inlet
			sf.apply(cmd, "", &sc)
			assert.Equal(t, tt.want, sc)
			assert.Equal(t, len(tt.args) > 0, sf.changed(cmd, ""))
		})
	}
}

func TestStaticFlags_Apply(t *testing.T) {
	cmd, _, st := parsed(t)
	sc := config.StaticConfig{By: "ps", Value: 300}
	st.apply(cmd, &sc)
	assert.Equal(t, config.StaticConfig{By: "ps", Value: 300}, sc, "scenario specifier kept without flags")

	sc = config.StaticConfig{}
	st.apply(cmd, &sc)
	assert.Equal(t, config.StaticConfig{By: "mach", Value: 0.3}, sc)

	cmd, _, st = parsed(t, "--by", "area", "--value", "32", "--branch", "super")
	sc = config.StaticConfig{By: "ps", Value: 300}
	st.apply(cmd, &sc)
	assert.Equal(t, config.StaticConfig{By: "area", Value: 32, Branch: "super"}, sc)
}
