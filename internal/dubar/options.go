package dubar

import (
	"time"

	"github.com/idelchi/dubar/internal/units"
)

// SortMode selects the ordering applied to scanned entries.
type SortMode int

const (
	// SortNone keeps the filesystem listing order.
	SortNone SortMode = iota
	// SortName orders by name, ascending byte order.
	SortName
	// SortSize orders by size, largest first, names breaking ties.
	SortSize
	// SortType places directories before files, each group by name.
	SortType
)

// String returns the lowercase name of the sort mode.
func (m SortMode) String() string {
	switch m {
	case SortName:
		return "name"
	case SortSize:
		return "size"
	case SortType:
		return "type"
	default:
		return "none"
	}
}

// Options configures a scan and the CLI behavior around it.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Sort selects the entry ordering.
	Sort SortMode
	// Reverse flips the resolved order.
	Reverse bool
	// Units selects the size rendering system.
	Units units.System
	// Regex keeps only entry names matching the pattern.
	Regex string
	// Include contains glob patterns an entry name must match.
	Include []string
	// Exclude contains glob patterns that hide matching entries.
	Exclude []string
	// DirsOnly keeps directory entries only.
	DirsOnly bool
	// FilesOnly keeps non-directory entries only.
	FilesOnly bool
	// MinSize hides entries smaller than this many bytes.
	MinSize uint64
	// MaxSize hides entries larger than this many bytes (0 = no limit).
	MaxSize uint64
	// MaxBarWidth is the widest bar the chart may draw, in cells.
	MaxBarWidth int
	// CountLines enables text-file line counting during the scan.
	CountLines bool
	// Workers bounds the scan worker pool (0 = automatic).
	Workers int
	// NoErrors suppresses the warning block on stderr.
	NoErrors bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (chart or json).
	Output string
}
