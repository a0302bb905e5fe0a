package dubar

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Warning records a non-fatal read failure encountered during a scan.
type Warning struct {
	// Path is the file or directory that could not be read.
	Path string
	// Err is the underlying error.
	Err error
}

// String renders the warning the way it appears on stderr.
func (w Warning) String() string {
	return fmt.Sprintf("error reading '%s': %v", w.Path, w.Err)
}

// MarshalJSON renders the warning as its display string.
func (w Warning) MarshalJSON() ([]byte, error) {
	//nolint:wrapcheck // Marshal of a plain string cannot fail meaningfully
	return json.Marshal(w.String())
}

// warningList collects warnings from concurrent scan tasks. Insertion
// order follows task completion, not traversal order.
type warningList struct {
	mu    sync.Mutex // Protect concurrent access
	items []Warning
}

// add records a warning. This operation is protected by a mutex since
// scan tasks run on multiple goroutines concurrently.
func (l *warningList) add(path string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, Warning{Path: path, Err: err})
}

// list returns a copy of the collected warnings.
func (l *warningList) list() []Warning {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Warning(nil), l.items...)
}
