package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/dubar/internal/dubar"
	"github.com/idelchi/dubar/internal/units"
)

func TestResolveOptionsDefaults(t *testing.T) {
	options := dubar.Options{Output: "chart", MaxBarWidth: DefaultMaxBarWidth}

	require.NoError(t, resolveOptions(&options, &flagValues{}))
	require.Equal(t, dubar.SortNone, options.Sort)
	require.Equal(t, units.Binary, options.Units)
	require.Zero(t, options.MinSize)
	require.Zero(t, options.MaxSize)
}

func TestResolveOptionsSortModes(t *testing.T) {
	cases := []struct {
		name  string
		flags flagValues
		want  dubar.SortMode
	}{
		{"name", flagValues{sortByName: true}, dubar.SortName},
		{"size", flagValues{sortBySize: true}, dubar.SortSize},
		{"type", flagValues{sortByType: true}, dubar.SortType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			options := dubar.Options{Output: "chart", MaxBarWidth: 1}

			require.NoError(t, resolveOptions(&options, &tc.flags))
			require.Equal(t, tc.want, options.Sort)
		})
	}
}

func TestResolveOptionsUnits(t *testing.T) {
	options := dubar.Options{Output: "chart", MaxBarWidth: 1}

	require.NoError(t, resolveOptions(&options, &flagValues{si: true}))
	require.Equal(t, units.SI, options.Units)

	require.NoError(t, resolveOptions(&options, &flagValues{raw: true}))
	require.Equal(t, units.Raw, options.Units)
}

func TestResolveOptionsSizeBounds(t *testing.T) {
	options := dubar.Options{Output: "chart", MaxBarWidth: 1}

	require.NoError(t, resolveOptions(&options, &flagValues{
		minSizeStr: "1KB",
		maxSizeStr: "1KiB",
	}))
	require.Equal(t, uint64(1000), options.MinSize)
	require.Equal(t, uint64(1024), options.MaxSize)
}

func TestResolveOptionsRejectsInvertedBounds(t *testing.T) {
	options := dubar.Options{Output: "chart", MaxBarWidth: 1}

	err := resolveOptions(&options, &flagValues{
		minSizeStr: "1GB",
		maxSizeStr: "1MB",
	})
	require.Error(t, err)
	require.ErrorContains(t, err, "min-size must be smaller than max-size")
}

func TestResolveOptionsRejectsBadValues(t *testing.T) {
	options := dubar.Options{Output: "yaml", MaxBarWidth: 1}
	require.ErrorContains(t, resolveOptions(&options, &flagValues{}), "invalid output format")

	options = dubar.Options{Output: "chart", MaxBarWidth: 0}
	require.ErrorContains(t, resolveOptions(&options, &flagValues{}), "max-bar-width")

	options = dubar.Options{Output: "chart", MaxBarWidth: 1, Workers: -1}
	require.ErrorContains(t, resolveOptions(&options, &flagValues{}), "workers")

	options = dubar.Options{Output: "chart", MaxBarWidth: 1}
	require.ErrorContains(t, resolveOptions(&options, &flagValues{minSizeStr: "bogus"}), "invalid min-size")

	options = dubar.Options{Output: "chart", MaxBarWidth: 1}
	require.ErrorContains(t, resolveOptions(&options, &flagValues{maxSizeStr: "bogus"}), "invalid max-size")
}

func TestCommandRejectsConflictingFlags(t *testing.T) {
	cases := [][]string{
		{"--name", "--size"},
		{"--size", "--type"},
		{"--si", "--raw"},
		{"--dirs-only", "--files-only"},
		{"--regex", "x", "--include", "y"},
		{"--regex", "x", "--exclude", "y"},
	}

	for _, args := range cases {
		cmd := New("test").command()
		cmd.SetArgs(args)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)

		require.Error(t, cmd.Execute(), "args: %v", args)
	}
}

func TestCommandRejectsInvalidOutput(t *testing.T) {
	cmd := New("test").command()
	cmd.SetArgs([]string{"--output", "yaml", t.TempDir()})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	require.ErrorContains(t, err, "invalid output format")
}

func TestCommandRejectsExtraArguments(t *testing.T) {
	cmd := New("test").command()
	cmd.SetArgs([]string{"one", "two"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	require.Error(t, cmd.Execute())
}

func TestCommandVersion(t *testing.T) {
	var buf bytes.Buffer

	cmd := New("1.2.3").command()
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.Execute())
	require.Equal(t, "1.2.3\n", buf.String())
}
