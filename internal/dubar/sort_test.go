package dubar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/dubar/internal/dubar"
)

func entryNames(entries []dubar.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	return names
}

func TestSortByName(t *testing.T) {
	entries := []dubar.Entry{
		{Name: "b"},
		{Name: "A"},
		{Name: "a"},
	}

	dubar.Sort(entries, dubar.SortName, false)

	// Byte order, so uppercase sorts before lowercase.
	require.Equal(t, []string{"A", "a", "b"}, entryNames(entries))
}

func TestSortBySizeBreaksTiesByName(t *testing.T) {
	entries := []dubar.Entry{
		{Name: "c", Size: 100},
		{Name: "b", Size: 300},
		{Name: "a", Size: 100},
	}

	dubar.Sort(entries, dubar.SortSize, false)

	require.Equal(t, []string{"b", "a", "c"}, entryNames(entries))
}

func TestSortByTypeGroupsDirectoriesFirst(t *testing.T) {
	entries := []dubar.Entry{
		{Name: "f.txt"},
		{Name: "d", IsDir: true},
		{Name: "a.txt"},
		{Name: "b", IsDir: true},
	}

	dubar.Sort(entries, dubar.SortType, false)

	require.Equal(t, []string{"b", "d", "a.txt", "f.txt"}, entryNames(entries))
}

func TestSortNoneKeepsOrder(t *testing.T) {
	entries := []dubar.Entry{
		{Name: "z"},
		{Name: "a"},
		{Name: "m"},
	}

	dubar.Sort(entries, dubar.SortNone, false)

	require.Equal(t, []string{"z", "a", "m"}, entryNames(entries))
}

func TestSortReverse(t *testing.T) {
	entries := []dubar.Entry{
		{Name: "c", Size: 100},
		{Name: "b", Size: 300},
		{Name: "a", Size: 100},
	}

	dubar.Sort(entries, dubar.SortSize, true)

	require.Equal(t, []string{"c", "a", "b"}, entryNames(entries))
}

func TestSortReverseListingOrder(t *testing.T) {
	entries := []dubar.Entry{
		{Name: "z"},
		{Name: "a"},
		{Name: "m"},
	}

	dubar.Sort(entries, dubar.SortNone, true)

	require.Equal(t, []string{"m", "a", "z"}, entryNames(entries))
}

func TestSortPreservesEntries(t *testing.T) {
	entries := []dubar.Entry{
		{Name: "c", Size: 1, IsDir: true},
		{Name: "b", Size: 2, HasError: true},
		{Name: "a", Size: 3},
	}

	dubar.Sort(entries, dubar.SortName, false)

	require.Len(t, entries, 3)

	got := entryMap(entries)
	require.True(t, got["c"].IsDir)
	require.Equal(t, uint64(1), got["c"].Size)
	require.True(t, got["b"].HasError)
	require.Equal(t, uint64(3), got["a"].Size)
}
