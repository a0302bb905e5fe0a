// Package cli implements the dubar command-line interface.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dubar/internal/dubar"
	"github.com/idelchi/dubar/internal/units"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.command().Execute() //nolint:wrapcheck // Errors already carry context
}

// flagValues holds raw flag state that needs post-processing before it
// can populate dubar.Options.
type flagValues struct {
	sortByName bool
	sortBySize bool
	sortByType bool
	si         bool
	raw        bool
	minSizeStr string
	maxSizeStr string
}

func (c CLI) command() *cobra.Command {
	var (
		options dubar.Options
		flags   flagValues
	)

	cmd := &cobra.Command{
		Use:   "dubar [flags] [dir]",
		Short: "Chart the disk usage of a directory's entries",
		Long: heredoc.Doc(`
			dubar sizes every immediate entry of a directory (files by their own
			length, directories by the recursive total of their contents) and
			draws a proportional bar chart of the results.

			Entries can be sorted by name, size or type, filtered with glob or
			regex patterns, and restricted by entry class or size bounds.

			Read errors never abort a scan: affected entries keep the partial
			size that could be resolved and the details go to stderr.

			Positional Arguments:
			  dir                    Directory to scan. Defaults to current directory if not specified.
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			if err := resolveOptions(&options, &flags); err != nil {
				return err
			}

			return logic(options)
		},
	}

	registerFlags(cmd.Flags(), &options, &flags)

	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.MarkFlagsMutuallyExclusive("name", "size", "type")
	cmd.MarkFlagsMutuallyExclusive("si", "raw")
	cmd.MarkFlagsMutuallyExclusive("dirs-only", "files-only")
	cmd.MarkFlagsMutuallyExclusive("regex", "include")
	cmd.MarkFlagsMutuallyExclusive("regex", "exclude")

	return cmd
}

// registerFlags wires the full flag surface onto f.
func registerFlags(f *pflag.FlagSet, options *dubar.Options, flags *flagValues) {
	f.BoolVarP(&flags.sortByName, "name", "n", false, "Sort entries by name")
	f.BoolVarP(&flags.sortBySize, "size", "s", false, "Sort entries by size, largest first")
	f.BoolVarP(&flags.sortByType, "type", "t", false, "Sort entries by type, directories first")
	f.BoolVar(&options.Reverse, "reverse", false, "Reverse the resolved order")
	f.BoolVar(&flags.si, "si", false, "Use SI units for sizes (kB, MB, ...) instead of binary (KiB, MiB, ...)")
	f.BoolVar(&flags.raw, "raw", false, "Print sizes as exact byte counts")
	f.StringVarP(&options.Regex, "regex", "r", "", "Keep only entry names matching a regular expression")
	f.StringSliceVarP(&options.Include, "include", "i", []string{}, "Glob patterns an entry name must match (e.g., *.go,*.md)")
	f.StringSliceVarP(&options.Exclude, "exclude", "e", []string{}, "Glob patterns that hide matching entries (e.g., .*,node_modules)")
	f.BoolVar(&options.DirsOnly, "dirs-only", false, "Show directories only")
	f.BoolVar(&options.FilesOnly, "files-only", false, "Show files only")
	f.StringVar(&flags.minSizeStr, "min-size", "", "Minimum entry size to show (e.g., 1KB)")
	f.StringVar(&flags.maxSizeStr, "max-size", "", "Maximum entry size to show (e.g., 1GB)")
	f.IntVarP(&options.MaxBarWidth, "max-bar-width", "w", DefaultMaxBarWidth, "Maximum width of the size bars, in cells")
	f.BoolVar(&options.CountLines, "lines", false, "Count text-file lines while scanning")
	f.IntVar(&options.Workers, "workers", 0, "Number of scan workers (0 = automatic)")
	f.BoolVar(&options.NoErrors, "no-errors", false, "Suppress error messages like 'permission denied'")
	f.StringVarP(&options.Output, "output", "o", "chart", "Output format: chart or json")
	f.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	f.SortFlags = false
}

// resolveOptions converts raw flag state into validated options.
func resolveOptions(options *dubar.Options, flags *flagValues) error {
	allowedOutputs := []string{"chart", "json"}
	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.MaxBarWidth < 1 {
		return errors.New("max-bar-width must be at least 1")
	}

	if options.Workers < 0 {
		return errors.New("workers cannot be negative")
	}

	switch {
	case flags.sortByName:
		options.Sort = dubar.SortName
	case flags.sortBySize:
		options.Sort = dubar.SortSize
	case flags.sortByType:
		options.Sort = dubar.SortType
	}

	switch {
	case flags.si:
		options.Units = units.SI
	case flags.raw:
		options.Units = units.Raw
	default:
		options.Units = units.Binary
	}

	// Parse size bound strings to bytes
	if flags.minSizeStr != "" {
		size, err := humanize.ParseBytes(flags.minSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		options.MinSize = size
	}

	if flags.maxSizeStr != "" {
		size, err := humanize.ParseBytes(flags.maxSizeStr)
		if err != nil {
			return fmt.Errorf("invalid max-size: %w", err)
		}

		options.MaxSize = size
	}

	if options.MaxSize > 0 && options.MinSize >= options.MaxSize {
		return fmt.Errorf("min-size must be smaller than max-size (got %d and %d)", options.MinSize, options.MaxSize)
	}

	return nil
}
