package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/idelchi/dubar/internal/dubar"
	"github.com/idelchi/dubar/internal/units"
)

const (
	// DefaultMaxBarWidth is the bar cell budget when the terminal
	// leaves enough room.
	DefaultMaxBarWidth = 50

	// columnGap separates the name column, the bar and the size column.
	columnGap = "   "

	// barFill draws one filled bar cell.
	barFill = "#"
)

// RenderOptions configures chart rendering.
type RenderOptions struct {
	// Dir is the target directory as the user typed it.
	Dir string
	// ResolvedDir is the absolute, symlink-resolved target path.
	ResolvedDir string
	// Units selects the size formatting system.
	Units units.System
	// MaxBarWidth caps the bar length in cells.
	MaxBarWidth int
	// Width is the terminal column budget (0 = unlimited).
	Width int
	// NoColor disables ANSI coloring.
	NoColor bool
	// ShowLines adds the counted text lines to the summary.
	ShowLines bool
}

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(result *dubar.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintWarnings writes the collected scan warnings inside a framed
// block so they stand apart from the chart around them.
func PrintWarnings(writer io.Writer, warnings []dubar.Warning) {
	fmt.Fprintln(writer, "\n=== START ERRORS ===")

	for _, w := range warnings {
		fmt.Fprintln(writer, w)
	}

	fmt.Fprintln(writer, "=== END ERRORS ===")
	fmt.Fprintln(writer)
}

// PrintChart writes the summary block followed by one bar line per
// entry, in the order the entries arrive.
func PrintChart(writer io.Writer, result *dubar.Result, opts RenderOptions) error {
	if err := printSummary(writer, result, opts); err != nil {
		return err
	}

	return printBars(writer, result.Entries, result.Stats.MaxSize, opts)
}

// printSummary frames the scan overview between separator lines sized
// to the longest row.
func printSummary(writer io.Writer, result *dubar.Result, opts RenderOptions) error {
	stats := result.Stats

	lines := []string{
		fmt.Sprintf("File/Directory Sizes in '%s'", opts.Dir),
		fmt.Sprintf("Resolved Path: %s", opts.ResolvedDir),
		fmt.Sprintf("Total Size: %s", opts.Units.Format(stats.TotalSize)),
		fmt.Sprintf("Items: %d (%d dirs, %d files)", len(result.Entries), stats.Dirs, stats.Files),
	}

	if opts.ShowLines {
		lines = append(lines, fmt.Sprintf("Lines: %d", stats.TotalLines))
	}

	lines = append(lines,
		fmt.Sprintf("Errors: %d", len(result.Warnings)),
		fmt.Sprintf("Took: %v", stats.Elapsed),
	)

	maxLen := 0

	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	separator := strings.Repeat("=", maxLen)

	if _, err := fmt.Fprintf(writer, "%s\n%s\n%s\n\n", separator, strings.Join(lines, "\n"), separator); err != nil {
		return err
	}

	return nil
}

// printBars renders one proportional bar per entry. Directories carry a
// trailing slash and print blue; entries with read errors print red.
func printBars(writer io.Writer, entries []dubar.Entry, maxSize uint64, opts RenderOptions) error {
	if len(entries) == 0 {
		return nil
	}

	names := make([]string, len(entries))
	sizes := make([]string, len(entries))

	var maxNameWidth, maxSizeWidth int

	for i, entry := range entries {
		names[i] = entry.Name
		if entry.IsDir {
			names[i] += "/"
		}

		if w := runewidth.StringWidth(names[i]); w > maxNameWidth {
			maxNameWidth = w
		}

		sizes[i] = opts.Units.Format(entry.Size)
		if len(sizes[i]) > maxSizeWidth {
			maxSizeWidth = len(sizes[i])
		}
	}

	barWidth := fitBarWidth(opts.MaxBarWidth, opts.Width, maxNameWidth, maxSizeWidth)

	dirColor := color.New(color.FgBlue)
	errColor := color.New(color.FgRed)

	if opts.NoColor {
		dirColor.DisableColor()
		errColor.DisableColor()
	} else {
		dirColor.EnableColor()
		errColor.EnableColor()
	}

	for i, entry := range entries {
		// Pad on plain width, then color; escape codes must not count.
		padding := strings.Repeat(" ", maxNameWidth-runewidth.StringWidth(names[i]))

		name := names[i]

		switch {
		case entry.HasError:
			name = errColor.Sprint(name)
		case entry.IsDir:
			name = dirColor.Sprint(name)
		}

		bar := strings.Repeat(barFill, barLength(entry.Size, maxSize, barWidth))

		if _, err := fmt.Fprintf(writer, "%s%s%s[%-*s]%s%*s\n",
			name, padding, columnGap, barWidth, bar, columnGap, maxSizeWidth, sizes[i]); err != nil {
			return err
		}
	}

	return nil
}

// barLength converts a size to filled cells, scaled against the largest
// entry. Any nonzero size gets at least one cell so small entries stay
// visible next to large ones.
func barLength(size, maxSize uint64, barWidth int) int {
	if maxSize == 0 {
		return 0
	}

	n := int(math.Round(float64(size) / float64(maxSize) * float64(barWidth)))
	if n > barWidth {
		n = barWidth
	}

	if size > 0 && n == 0 {
		n = 1
	}

	return n
}

// fitBarWidth shrinks the configured bar budget until a full line fits
// the terminal. The name column, both gaps, the brackets and the size
// column are reserved first.
func fitBarWidth(maxBarWidth, width, nameWidth, sizeWidth int) int {
	barWidth := maxBarWidth

	if width > 0 {
		reserved := nameWidth + 2*len(columnGap) + len("[]") + sizeWidth
		if avail := width - reserved; avail < barWidth {
			barWidth = avail
		}
	}

	if barWidth < 1 {
		barWidth = 1
	}

	return barWidth
}
