package dubar

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Worker pool sizing for the I/O-bound subtree scans.
const (
	minWorkers    = 8
	maxWorkers    = 64
	cpuMultiplier = 2
)

// scanner walks one target directory. Every subtree total is computed
// by an independent task and summed by its parent, so totals need no
// shared state; the semaphore only bounds how many tasks run at once.
type scanner struct {
	sem        *semaphore.Weighted
	warnings   *warningList
	workers    int
	countLines bool

	filesScanned atomic.Int64
	dirsScanned  atomic.Int64
	bytesScanned atomic.Int64
	linesCounted atomic.Int64
}

// newScanner sizes the worker pool from opts.Workers, or from the CPU
// count when unset.
func newScanner(opts Options) *scanner {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0) * cpuMultiplier
		if workers < minWorkers {
			workers = minWorkers
		}

		if workers > maxWorkers {
			workers = maxWorkers
		}
	}

	return &scanner{
		sem:        semaphore.NewWeighted(int64(workers)),
		warnings:   &warningList{},
		workers:    workers,
		countLines: opts.CountLines,
	}
}

// progress returns the files and bytes seen so far.
func (s *scanner) progress() (files, bytes int64) {
	return s.filesScanned.Load(), s.bytesScanned.Load()
}

// scanTarget sizes every immediate child of dir that passes filter.
// Children whose metadata cannot be read are dropped with a warning;
// a directory child keeps whatever partial total its subtree yielded
// and is flagged instead. Only an unreadable dir itself is an error.
func (s *scanner) scanTarget(dir string, filter *nameFilter) ([]Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	entries := make([]Entry, 0, len(children))

	for _, child := range children {
		name := child.Name()
		if !filter.match(name) {
			continue
		}

		path := filepath.Join(dir, name)
		entry := Entry{Name: name, Path: path, IsDir: child.IsDir()}

		// Regular files report their own length here; symlinks and
		// specials stay at zero and are never resolved.
		if !entry.IsDir && child.Type().IsRegular() {
			info, err := child.Info()
			if err != nil {
				s.warnings.add(path, err)

				continue
			}

			entry.Size = uint64(info.Size()) //nolint:gosec // Regular file sizes are never negative
			s.filesScanned.Add(1)
			s.bytesScanned.Add(info.Size())

			if s.countLines {
				s.addLines(path)
			}
		}

		entries = append(entries, entry)
	}

	// Fan out across directory subtrees. Each task owns exactly one
	// entry slot, so results join without locks.
	var wg sync.WaitGroup

	for i := range entries {
		if !entries[i].IsDir {
			continue
		}

		s.dirsScanned.Add(1)

		entry := &entries[i]

		if s.sem.TryAcquire(1) {
			wg.Add(1)

			go func() {
				defer wg.Done()
				defer s.sem.Release(1)

				entry.Size, entry.HasError = s.subtreeSize(entry.Path)
			}()
		} else {
			entry.Size, entry.HasError = s.subtreeSize(entry.Path)
		}
	}

	wg.Wait()

	return entries, nil
}

// subtreeSize sums regular-file bytes across the tree rooted at dir.
// Subdirectories become parallel tasks when pool slots are free and run
// inline otherwise, so recursion never blocks on a full pool. Each call
// returns its own total; parents combine child results after the join.
// incomplete reports that some part of the subtree could not be read.
func (s *scanner) subtreeSize(dir string) (size uint64, incomplete bool) {
	children, err := os.ReadDir(dir)
	if err != nil {
		s.warnings.add(dir, err)

		return 0, true
	}

	type subtotal struct {
		size       uint64
		incomplete bool
	}

	var (
		wg      sync.WaitGroup
		spawned []*subtotal
	)

	for _, child := range children {
		path := filepath.Join(dir, child.Name())

		if child.IsDir() {
			s.dirsScanned.Add(1)

			if s.sem.TryAcquire(1) {
				st := &subtotal{}
				spawned = append(spawned, st)

				wg.Add(1)

				go func() {
					defer wg.Done()
					defer s.sem.Release(1)

					st.size, st.incomplete = s.subtreeSize(path)
				}()
			} else {
				sub, inc := s.subtreeSize(path)
				size += sub
				incomplete = incomplete || inc
			}

			continue
		}

		// Symlinks and specials are zero-size leaves: resolving them
		// risks cycles and double counting.
		if !child.Type().IsRegular() {
			continue
		}

		info, err := child.Info()
		if err != nil {
			s.warnings.add(path, err)

			incomplete = true

			continue
		}

		size += uint64(info.Size()) //nolint:gosec // Regular file sizes are never negative
		s.filesScanned.Add(1)
		s.bytesScanned.Add(info.Size())

		if s.countLines {
			s.addLines(path)
		}
	}

	wg.Wait()

	for _, st := range spawned {
		size += st.size
		incomplete = incomplete || st.incomplete
	}

	return size, incomplete
}

// addLines counts the lines of one file into the running total. Read
// failures become warnings, never errors.
func (s *scanner) addLines(path string) {
	n, err := countLines(path)
	if err != nil {
		s.warnings.add(path, err)

		return
	}

	s.linesCounted.Add(n)
}
