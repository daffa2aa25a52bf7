package main

import (
	"testing"

	"motionsplit/internal/scheme"
)

func TestKindLabel(t *testing.T) {
	cases := []struct {
		kind scheme.Kind
		want string
	}{
		{scheme.SamsungEmbeddedVideo, "Samsung Embedded Video"},
		{scheme.GoogleLegacyFooterOffset, "Google Legacy Footer Offset"},
		{scheme.GoogleBoxScan, "Google Box Scan"},
		{"", "-"},
	}
	for _, tc := range cases {
		if got := kindLabel(tc.kind); got != tc.want {
			t.Errorf("kindLabel(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestFactSummary(t *testing.T) {
	facts := []scheme.Fact{
		{Kind: scheme.GoogleLegacyFooterOffset},
		{Kind: scheme.GoogleBoxScan},
	}
	got := factSummary(facts)
	want := "Google Legacy Footer Offset, Google Box Scan"
	if got != want {
		t.Errorf("factSummary = %q, want %q", got, want)
	}
}
