package workflow

import (
	"errors"
	"testing"
)

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		from    Status
		action  Action
		want    Status
		wantErr bool
	}{
		{StatusDraft, ActionSubmit, StatusSubmitted, false},
		{StatusSubmitted, ActionApprove, StatusApproved, false},
		{StatusSubmitted, ActionReject, StatusRejected, false},
		{StatusApproved, ActionValidate, StatusValidated, false},
		{StatusApproved, ActionAdminReject, StatusAdminRejected, false},
		{StatusRejected, ActionRevertToDraft, StatusDraft, false},
		{StatusAdminRejected, ActionRevertToDraft, StatusDraft, false},

		// illegal moves
		{StatusDraft, ActionApprove, StatusDraft, true},
		{StatusDraft, ActionValidate, StatusDraft, true},
		{StatusSubmitted, ActionSubmit, StatusSubmitted, true},
		{StatusSubmitted, ActionValidate, StatusSubmitted, true},
		{StatusApproved, ActionApprove, StatusApproved, true},
		{StatusApproved, ActionSubmit, StatusApproved, true},
		{StatusRejected, ActionApprove, StatusRejected, true},
		{StatusRejected, ActionValidate, StatusRejected, true},
		{StatusAdminRejected, ActionApprove, StatusAdminRejected, true},
		{StatusValidated, ActionSubmit, StatusValidated, true},
		{StatusValidated, ActionRevertToDraft, StatusValidated, true},
	}
	for _, tt := range tests {
		got, err := Transition(tt.from, tt.action)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s + %s: want ErrInvalidTransition, got %v", tt.from, tt.action, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s + %s: unexpected error %v", tt.from, tt.action, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.from, tt.action, got, tt.want)
		}
	}
}

// Rejected states only ever lead back to Draft, never forward.
func TestTransition_RejectedOnlyRevert(t *testing.T) {
	for _, from := range []Status{StatusRejected, StatusAdminRejected} {
		for _, a := range []Action{ActionSubmit, ActionApprove, ActionReject, ActionValidate, ActionAdminReject} {
			if _, err := Transition(from, a); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s + %s should be invalid", from, a)
			}
		}
		next, err := Transition(from, ActionRevertToDraft)
		if err != nil || next != StatusDraft {
			t.Errorf("%s + revert = (%s, %v), want (Draft, nil)", from, next, err)
		}
	}
}

func TestTransition_ValidatedIsTerminal(t *testing.T) {
	for _, a := range []Action{ActionSubmit, ActionApprove, ActionReject, ActionValidate, ActionAdminReject, ActionRevertToDraft} {
		if _, err := Transition(StatusValidated, a); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Validated + %s should be invalid", a)
		}
	}
}

func TestTarget_MatchesLattice(t *testing.T) {
	for from, byAction := range transitions {
		for a, want := range byAction {
			if got := Target(a); got != want {
				t.Errorf("Target(%s) = %s, want %s (from %s)", a, got, want, from)
			}
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSubmitted, StatusApproved, StatusValidated, StatusRejected, StatusAdminRejected} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	if ValidStatus("Pending") || ValidStatus("") {
		t.Error("unknown statuses must not validate")
	}
}
