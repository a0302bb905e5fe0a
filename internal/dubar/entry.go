package dubar

// Entry is one immediate child of the scanned directory with its total
// size resolved.
type Entry struct {
	// Name is the final path component, as shown in the chart.
	Name string `json:"name"`
	// Path is the entry's location on disk, used during traversal only.
	Path string `json:"-"`
	// Size is the total size in bytes. For directories it is the sum of
	// every regular file reachable without following symlinks.
	Size uint64 `json:"size"`
	// IsDir indicates whether the entry is a directory.
	IsDir bool `json:"is_dir"`
	// HasError indicates that part of the entry's subtree could not be
	// read, making Size a lower bound.
	HasError bool `json:"has_error,omitempty"`
}
