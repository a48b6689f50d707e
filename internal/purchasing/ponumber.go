package purchasing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PO numbers look like PO-202608-007: a per-calendar-month counter,
// zero-padded to three digits, starting at 1 each month. Allocation
// reads the greatest existing number for the month and increments it;
// the unique index on po_number turns a concurrent double-allocation
// into a retryable duplicate-key error instead of a silent collision.

// MonthPrefix returns the PO number prefix for the month of t,
// e.g. "PO-202608-".
func MonthPrefix(t time.Time) string {
	return "PO-" + t.Format("200601") + "-"
}

// FormatPONumber builds the PO number for the month of t and the given
// sequence value.
func FormatPONumber(t time.Time, seq int) string {
	return fmt.Sprintf("%s%03d", MonthPrefix(t), seq)
}

// NextPONumber computes the number following last within the month of
// now. An empty last (no orders yet this month) starts the sequence at
// 1. A last value from a different month also restarts at 1.
func NextPONumber(last string, now time.Time) (string, error) {
	prefix := MonthPrefix(now)
	if last == "" || !strings.HasPrefix(last, prefix) {
		return FormatPONumber(now, 1), nil
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
	if err != nil {
		return "", fmt.Errorf("malformed po number %q: %w", last, err)
	}
	return FormatPONumber(now, seq+1), nil
}
