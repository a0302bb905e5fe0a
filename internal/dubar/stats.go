package dubar

import "time"

// Stats summarizes a completed scan.
type Stats struct {
	// TotalSize is the cumulative size of all reported entries.
	TotalSize uint64 `json:"total_size"`
	// MaxSize is the largest entry size, the chart's full-scale value.
	MaxSize uint64 `json:"max_size"`
	// Dirs is the number of directory entries reported.
	Dirs int `json:"dirs"`
	// Files is the number of non-directory entries reported.
	Files int `json:"files"`
	// TotalLines is the number of text lines counted, when enabled.
	TotalLines int64 `json:"total_lines,omitempty"`
	// Elapsed is the wall-clock scan duration.
	Elapsed time.Duration `json:"elapsed"`
}

// newStats folds the final entry list into summary figures.
func newStats(entries []Entry) Stats {
	var stats Stats

	for i := range entries {
		entry := &entries[i]

		stats.TotalSize += entry.Size
		if entry.Size > stats.MaxSize {
			stats.MaxSize = entry.Size
		}

		if entry.IsDir {
			stats.Dirs++
		} else {
			stats.Files++
		}
	}

	return stats
}
