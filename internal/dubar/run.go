package dubar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Result holds everything a scan produced: the target's sized immediate
// children in filesystem listing order, summary statistics, and the
// non-fatal warnings hit along the way.
type Result struct {
	// Entries are the surviving immediate children of the target.
	Entries []Entry `json:"entries"`
	// Stats summarizes the scan.
	Stats Stats `json:"stats"`
	// Warnings lists non-fatal read failures, in completion order.
	Warnings []Warning `json:"warnings,omitempty"`
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, s *scanner, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(s.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run scans the immediate children of opts.Path and returns them with
// every directory size fully resolved.
//
// Name filters (regex or globs) decide which children are scanned at
// all; type and size filters prune the finished list, since they depend
// on resolved sizes. Read failures below the target are collected as
// warnings and never abort the scan. Only an unusable target fails.
//
// Progress updates are sent to progressHook if provided. ctx stops the
// progress reporter; a scan always runs to completion.
func Run(ctx context.Context, opts Options, progressHook func(int64, int64)) (*Result, error) {
	log := logger{enabled: opts.Debug}

	if opts.Path == "" {
		opts.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opts.Path = filepath.Clean(opts.Path)

	// validate path exists and is accessible
	if statInfo, err := os.Stat(opts.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opts.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opts.Path)
	}

	filter, err := newNameFilter(opts)
	if err != nil {
		return nil, err
	}

	scanner := newScanner(opts)

	log.printf("\n")
	log.printf("[debug]: scanning: %s\n", opts.Path)
	log.printf("[debug]: workers: %d\n", scanner.workers)
	log.printf("[debug]: sort mode: %s\n", opts.Sort)

	if opts.Regex != "" {
		log.printf("[debug]: regex filter: %s\n", opts.Regex)
	}

	log.printf("[debug]: include globs:\n")

	for _, p := range opts.Include {
		log.printf("[debug]:   - %s\n", p)
	}

	log.printf("[debug]: exclude globs:\n")

	for _, p := range opts.Exclude {
		log.printf("[debug]:   - %s\n", p)
	}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, scanner, progressHook, opts.ProgressInterval)

	start := time.Now()

	entries, err := scanner.scanTarget(opts.Path, filter)
	if err != nil {
		return nil, err
	}

	entries = applyResultFilters(entries, opts, log)

	log.printf("[debug]: visited %d directories and %d files\n",
		scanner.dirsScanned.Load(), scanner.filesScanned.Load())

	stats := newStats(entries)
	stats.TotalLines = scanner.linesCounted.Load()
	stats.Elapsed = time.Since(start)

	return &Result{
		Entries:  entries,
		Stats:    stats,
		Warnings: scanner.warnings.list(),
	}, nil
}

// applyResultFilters prunes the sized entry list by type and size.
// These run after the scan because directory sizes exist only then.
func applyResultFilters(entries []Entry, opts Options, log logger) []Entry {
	if !opts.DirsOnly && !opts.FilesOnly && opts.MinSize == 0 && opts.MaxSize == 0 {
		return entries
	}

	kept := entries[:0]

	for _, entry := range entries {
		switch {
		case opts.DirsOnly && !entry.IsDir:
			log.printf("[debug]: dropping file: %s\n", entry.Name)
		case opts.FilesOnly && entry.IsDir:
			log.printf("[debug]: dropping directory: %s\n", entry.Name)
		case entry.Size < opts.MinSize:
			log.printf("[debug]: dropping entry below min-size: %s\n", entry.Name)
		case opts.MaxSize > 0 && entry.Size > opts.MaxSize:
			log.printf("[debug]: dropping entry above max-size: %s\n", entry.Name)
		default:
			kept = append(kept, entry)
		}
	}

	return kept
}
