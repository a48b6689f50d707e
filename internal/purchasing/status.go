package purchasing

import (
	"purchasing-service/internal/model"
)

// TransitionEvent is an action attempted against a purchase order.
type TransitionEvent string

const (
	EventSubmit        TransitionEvent = "submit"
	EventApprove       TransitionEvent = "approve"
	EventReject        TransitionEvent = "reject"
	EventSend          TransitionEvent = "send"
	EventRecordReceipt TransitionEvent = "record_receipt"
	EventCancel        TransitionEvent = "cancel"

	// Not status transitions, used only for conflict reporting.
	EventEdit           TransitionEvent = "edit"
	EventCreateShipment TransitionEvent = "create_shipment"
)

// legalFrom lists the statuses each event may be applied from. The
// resulting status is decided by the operation itself (submit consults
// the approval policy, record_receipt the fulfillment recomputation);
// this table only answers whether the event is legal at all.
var legalFrom = map[TransitionEvent][]model.POStatus{
	EventSubmit:        {model.POStatusDraft},
	EventApprove:       {model.POStatusPendingApproval},
	EventReject:        {model.POStatusPendingApproval},
	EventSend:          {model.POStatusApproved},
	EventRecordReceipt: {model.POStatusSent, model.POStatusPartiallyReceived},
	EventCancel:        {model.POStatusDraft, model.POStatusPendingApproval, model.POStatusApproved, model.POStatusSent},
}

// CanTransition reports whether event is legal from the given status.
func CanTransition(from model.POStatus, event TransitionEvent) bool {
	for _, s := range legalFrom[event] {
		if s == from {
			return true
		}
	}
	return false
}
