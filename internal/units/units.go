// Package units converts byte counts to human-readable strings.
package units

import (
	"fmt"
	"strconv"
)

// System selects how byte counts are rendered.
type System int

const (
	// Binary renders with IEC prefixes (KiB, MiB, ...), base 1024.
	Binary System = iota

	// SI renders with decimal prefixes (kB, MB, ...), base 1000.
	SI

	// Raw renders the exact byte count with no unit.
	Raw
)

//nolint:gochecknoglobals // Unit tables
var (
	siPrefixes     = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}
	binaryPrefixes = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
)

// String returns the lowercase name of the system.
func (s System) String() string {
	switch s {
	case SI:
		return "si"
	case Raw:
		return "raw"
	default:
		return "binary"
	}
}

// Format renders b in the selected system. Plain bytes print as
// integers, scaled values with two decimals.
func (s System) Format(b uint64) string {
	switch s {
	case SI:
		return scale(b, 1000, siPrefixes)
	case Raw:
		return strconv.FormatUint(b, 10)
	default:
		return scale(b, 1024, binaryPrefixes)
	}
}

func scale(b uint64, base float64, prefixes []string) string {
	value := float64(b)
	unit := prefixes[0]

	for _, next := range prefixes[1:] {
		if value < base {
			break
		}

		value /= base
		unit = next
	}

	if unit == prefixes[0] {
		return fmt.Sprintf("%.0f %s", value, unit)
	}

	return fmt.Sprintf("%.2f %s", value, unit)
}
