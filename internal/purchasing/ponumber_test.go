package purchasing

import (
	"testing"
	"time"
)

var august = time.Date(2026, time.August, 14, 10, 0, 0, 0, time.UTC)

func TestMonthPrefix(t *testing.T) {
	if got := MonthPrefix(august); got != "PO-202608-" {
		t.Errorf("MonthPrefix = %q, want %q", got, "PO-202608-")
	}
}

func TestFormatPONumber(t *testing.T) {
	tests := []struct {
		seq  int
		want string
	}{
		{1, "PO-202608-001"},
		{42, "PO-202608-042"},
		{999, "PO-202608-999"},
		{1000, "PO-202608-1000"},
	}
	for _, tt := range tests {
		if got := FormatPONumber(august, tt.seq); got != tt.want {
			t.Errorf("FormatPONumber(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestNextPONumber(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{"no orders this month", "", "PO-202608-001"},
		{"increments within month", "PO-202608-007", "PO-202608-008"},
		{"sequence past padding", "PO-202608-099", "PO-202608-100"},
		{"crossing the padding width", "PO-202608-999", "PO-202608-1000"},
		{"past the padding width", "PO-202608-1000", "PO-202608-1001"},
		{"previous month resets", "PO-202607-153", "PO-202608-001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextPONumber(tt.last, august)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextPONumber(%q) = %q, want %q", tt.last, got, tt.want)
			}
		})
	}
}

func TestNextPONumberAcrossMonthBoundary(t *testing.T) {
	september := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	last, err := NextPONumber("PO-202608-011", august)
	if err != nil {
		t.Fatal(err)
	}
	if last != "PO-202608-012" {
		t.Fatalf("expected PO-202608-012, got %s", last)
	}

	next, err := NextPONumber(last, september)
	if err != nil {
		t.Fatal(err)
	}
	if next != "PO-202609-001" {
		t.Errorf("expected sequence to reset to PO-202609-001, got %s", next)
	}
}

func TestNextPONumberStrictlyIncreasing(t *testing.T) {
	last := ""
	prev := ""
	for i := 0; i < 25; i++ {
		next, err := NextPONumber(last, august)
		if err != nil {
			t.Fatal(err)
		}
		if prev != "" && next <= prev {
			t.Fatalf("numbers not strictly increasing: %s then %s", prev, next)
		}
		prev = next
		last = next
	}
	if last != "PO-202608-025" {
		t.Errorf("expected PO-202608-025 after 25 allocations, got %s", last)
	}
}

func TestNextPONumberMalformed(t *testing.T) {
	if _, err := NextPONumber("PO-202608-xyz", august); err == nil {
		t.Error("expected an error for a malformed sequence suffix")
	}
}
