package http

import "testing"

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "₹0.00"},
		{50, "₹0.50"},
		{100, "₹1.00"},
		{7500000, "₹75,000.00"},
		{850050, "₹8,500.50"},
		{123456789, "₹12,34,567.89"},
		{10000000000, "₹10,00,00,000.00"},
		{-2000000, "-₹20,000.00"},
	}
	for _, tc := range cases {
		if got := formatRupees(tc.cents); got != tc.want {
			t.Fatalf("formatRupees(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestGroupIndian(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"75000", "75,000"},
		{"100000", "1,00,000"},
		{"1234567", "12,34,567"},
		{"123456789", "12,34,56,789"},
	}
	for _, tc := range cases {
		if got := groupIndian(tc.in); got != tc.want {
			t.Fatalf("groupIndian(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		path string
		want int64
		ok   bool
	}{
		{"/api/transactions/7", 7, true},
		{"/api/transactions/7/", 7, true},
		{"/api/transactions/abc", 0, false},
		{"/api/transactions/", 0, false},
	}
	for _, tc := range cases {
		got, err := parseID(tc.path, "/api/transactions/")
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("parseID(%q) = %d (err=%v), want %d", tc.path, got, err, tc.want)
			}
		} else if err == nil {
			t.Fatalf("parseID(%q) expected error", tc.path)
		}
	}
}
