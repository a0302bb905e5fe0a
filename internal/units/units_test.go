package units

import "testing"

func TestFormatBinary(t *testing.T) {
	cases := []struct {
		bytes    uint64
		expected string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{10000, "9.77 KiB"},
		{1 << 20, "1.00 MiB"},
		{5 << 20, "5.00 MiB"},
		{1 << 30, "1.00 GiB"},
		{1<<40 + 1<<39, "1.50 TiB"},
		{1 << 50, "1.00 PiB"},
		{1 << 60, "1.00 EiB"},
		{18446744073709551615, "16.00 EiB"},
	}

	for _, tc := range cases {
		if got := Binary.Format(tc.bytes); got != tc.expected {
			t.Errorf("Binary.Format(%v) = %q, want %q", tc.bytes, got, tc.expected)
		}
	}
}

func TestFormatSI(t *testing.T) {
	cases := []struct {
		bytes    uint64
		expected string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{1000, "1.00 kB"},
		{1500, "1.50 kB"},
		{1000000, "1.00 MB"},
		{2500000, "2.50 MB"},
		{1000000000, "1.00 GB"},
		{1230000000000, "1.23 TB"},
	}

	for _, tc := range cases {
		if got := SI.Format(tc.bytes); got != tc.expected {
			t.Errorf("SI.Format(%v) = %q, want %q", tc.bytes, got, tc.expected)
		}
	}
}

func TestFormatRaw(t *testing.T) {
	cases := []struct {
		bytes    uint64
		expected string
	}{
		{0, "0"},
		{1023, "1023"},
		{1048576, "1048576"},
		{18446744073709551615, "18446744073709551615"},
	}

	for _, tc := range cases {
		if got := Raw.Format(tc.bytes); got != tc.expected {
			t.Errorf("Raw.Format(%v) = %q, want %q", tc.bytes, got, tc.expected)
		}
	}
}

func TestSystemString(t *testing.T) {
	cases := []struct {
		system   System
		expected string
	}{
		{Binary, "binary"},
		{SI, "si"},
		{Raw, "raw"},
	}

	for _, tc := range cases {
		if got := tc.system.String(); got != tc.expected {
			t.Errorf("String() = %q, want %q", got, tc.expected)
		}
	}
}
