package purchasing

import (
	"strings"
	"testing"

	"purchasing-service/internal/model"
)

func TestEvaluateApproval(t *testing.T) {
	const threshold = 100000

	tests := []struct {
		name          string
		totalCents    int64
		wantStatus    model.POStatus
		needsApproval bool
	}{
		{"well below threshold", 500, model.POStatusApproved, false},
		{"one below threshold", threshold - 1, model.POStatusApproved, false},
		{"exactly at threshold", threshold, model.POStatusPendingApproval, true},
		{"above threshold", threshold + 1, model.POStatusPendingApproval, true},
		{"zero total", 0, model.POStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateApproval(tt.totalCents, threshold)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.NeedsApproval != tt.needsApproval {
				t.Errorf("needsApproval = %v, want %v", got.NeedsApproval, tt.needsApproval)
			}
		})
	}
}

func TestEvaluateApprovalAuditNote(t *testing.T) {
	auto := EvaluateApproval(500, 100000)
	if !strings.Contains(auto.AuditNote, "auto-approved") {
		t.Errorf("expected auto-approval note, got %q", auto.AuditNote)
	}
	if !strings.Contains(auto.AuditNote, "500") || !strings.Contains(auto.AuditNote, "100000") {
		t.Errorf("note should carry total and threshold, got %q", auto.AuditNote)
	}

	pending := EvaluateApproval(100000, 100000)
	if !strings.Contains(pending.AuditNote, "pending approval") {
		t.Errorf("expected pending-approval note, got %q", pending.AuditNote)
	}
}
