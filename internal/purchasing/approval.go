package purchasing

import (
	"fmt"

	"purchasing-service/internal/model"
)

// ApprovalDecision is the outcome of evaluating a submitted purchase
// order against the approval threshold.
type ApprovalDecision struct {
	Status        model.POStatus
	NeedsApproval bool
	// AuditNote is the human-readable description recorded on the
	// submitted event.
	AuditNote string
}

// EvaluateApproval applies the approval policy: a total at or above the
// threshold needs manual approval, anything below is auto-approved.
// Both amounts are in minor currency units. The threshold is whatever
// is configured at submit time; the decision is recorded on the event
// so a later threshold change never rewrites history.
func EvaluateApproval(totalCents, thresholdCents int64) ApprovalDecision {
	if totalCents >= thresholdCents {
		return ApprovalDecision{
			Status:        model.POStatusPendingApproval,
			NeedsApproval: true,
			AuditNote: fmt.Sprintf("pending approval: total %d at or above threshold %d",
				totalCents, thresholdCents),
		}
	}
	return ApprovalDecision{
		Status:        model.POStatusApproved,
		NeedsApproval: false,
		AuditNote: fmt.Sprintf("auto-approved: total %d below threshold %d",
			totalCents, thresholdCents),
	}
}
