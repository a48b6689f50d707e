package purchasing

import (
	"errors"
	"testing"

	"purchasing-service/internal/model"
)

func TestCanTransitionLegalPairs(t *testing.T) {
	tests := []struct {
		from  model.POStatus
		event TransitionEvent
	}{
		{model.POStatusDraft, EventSubmit},
		{model.POStatusPendingApproval, EventApprove},
		{model.POStatusPendingApproval, EventReject},
		{model.POStatusApproved, EventSend},
		{model.POStatusSent, EventRecordReceipt},
		{model.POStatusPartiallyReceived, EventRecordReceipt},
		{model.POStatusDraft, EventCancel},
		{model.POStatusPendingApproval, EventCancel},
		{model.POStatusApproved, EventCancel},
		{model.POStatusSent, EventCancel},
	}

	for _, tt := range tests {
		if !CanTransition(tt.from, tt.event) {
			t.Errorf("expected %s to be legal from %s", tt.event, tt.from)
		}
	}
}

func TestCanTransitionIllegalPairs(t *testing.T) {
	statuses := []model.POStatus{
		model.POStatusDraft,
		model.POStatusPendingApproval,
		model.POStatusApproved,
		model.POStatusSent,
		model.POStatusPartiallyReceived,
		model.POStatusClosed,
		model.POStatusCancelled,
	}
	events := []TransitionEvent{
		EventSubmit, EventApprove, EventReject, EventSend, EventRecordReceipt, EventCancel,
	}

	legal := map[TransitionEvent]map[model.POStatus]bool{
		EventSubmit:        {model.POStatusDraft: true},
		EventApprove:       {model.POStatusPendingApproval: true},
		EventReject:        {model.POStatusPendingApproval: true},
		EventSend:          {model.POStatusApproved: true},
		EventRecordReceipt: {model.POStatusSent: true, model.POStatusPartiallyReceived: true},
		EventCancel: {
			model.POStatusDraft: true, model.POStatusPendingApproval: true,
			model.POStatusApproved: true, model.POStatusSent: true,
		},
	}

	for _, from := range statuses {
		for _, event := range events {
			want := legal[event][from]
			if got := CanTransition(from, event); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, event, got, want)
			}
		}
	}
}

func TestCanTransitionTerminalStates(t *testing.T) {
	events := []TransitionEvent{
		EventSubmit, EventApprove, EventReject, EventSend, EventRecordReceipt, EventCancel,
	}
	for _, status := range []model.POStatus{model.POStatusClosed, model.POStatusCancelled} {
		for _, event := range events {
			if CanTransition(status, event) {
				t.Errorf("expected no event to be legal from %s, but %s is", status, event)
			}
		}
	}
}

func TestConflictErrorClassification(t *testing.T) {
	err := conflict(42, model.POStatusSent, EventSubmit)

	if !errors.Is(err, ErrStateConflict) {
		t.Error("conflict error should match ErrStateConflict")
	}

	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatal("expected a *ConflictError")
	}
	if conflictErr.PurchaseOrderID != 42 {
		t.Errorf("expected PO id 42, got %d", conflictErr.PurchaseOrderID)
	}
	if conflictErr.CurrentStatus != model.POStatusSent {
		t.Errorf("expected current status sent, got %s", conflictErr.CurrentStatus)
	}
	if conflictErr.Event != EventSubmit {
		t.Errorf("expected event submit, got %s", conflictErr.Event)
	}
}
