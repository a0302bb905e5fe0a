package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/idelchi/dubar/internal/dubar"
)

func logic(options dubar.Options) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := dubar.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	dubar.Sort(result.Entries, options.Sort, options.Reverse)

	renderOpts := RenderOptions{
		Dir:         options.Path,
		ResolvedDir: resolveDir(options.Path),
		Units:       options.Units,
		MaxBarWidth: options.MaxBarWidth,
		Width:       terminalWidth(),
		NoColor:     !isatty.IsTerminal(os.Stdout.Fd()),
		ShowLines:   options.CountLines,
	}

	return render(result, options, renderOpts, os.Stdout, os.Stderr)
}

// render routes the finished result to the requested format. Warnings
// go to stderr before the chart so redirecting stdout stays clean.
func render(result *dubar.Result, options dubar.Options, renderOpts RenderOptions, stdout, stderr io.Writer) error {
	if strings.ToLower(options.Output) == "json" {
		return PrintJSON(result, stdout)
	}

	if !options.NoErrors && len(result.Warnings) > 0 {
		PrintWarnings(stderr, result.Warnings)
	}

	return PrintChart(stdout, result, renderOpts)
}

// resolveDir returns the absolute, symlink-resolved form of dir for
// display, falling back to less resolved forms when resolution fails.
func resolveDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}

	return resolved
}

// terminalWidth reports the stdout column budget. Piped output has no
// width to fit and reports 0.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}

	return width
}
