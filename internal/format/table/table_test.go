package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"roms", "DIR"},
		{"mario.sfc", "2.0 kB"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"roms          DIR",
		"mario.sfc  2.0 kB",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatCountsWideRunes(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"abcd", "y"}}, nil)
	if got[0] != "日本  x" {
		t.Fatalf("expected wide runes padded as two cells each, got %q", got[0])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestFit(t *testing.T) {
	if got := Fit("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := Fit("a long label", 6); got != "a lon…" {
		t.Fatalf("expected truncated text, got %q", got)
	}
}
