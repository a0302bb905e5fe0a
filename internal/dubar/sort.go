package dubar

import "sort"

// Sort orders entries according to mode, then optionally reverses the
// result in place. SortNone keeps the filesystem listing order, so with
// reverse unset it is a no-op.
func Sort(entries []Entry, mode SortMode, reverse bool) {
	switch mode {
	case SortName:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
	case SortSize:
		// Largest first; names break ties so the order is stable
		// across runs.
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Size != entries[j].Size {
				return entries[i].Size > entries[j].Size
			}

			return entries[i].Name < entries[j].Name
		})
	case SortType:
		// Directories first, each group alphabetical.
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].IsDir != entries[j].IsDir {
				return entries[i].IsDir
			}

			return entries[i].Name < entries[j].Name
		})
	case SortNone:
	}

	if reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}
