package codegen

import "fmt"

// Owner is the identity currently holding a code, as stored by the caller.
type Owner struct {
	ID       string
	NIM      string
	FullName string
	Code     string
	Angkatan int
}

// Assessment is the outcome of a conflict check before a code is written.
// A conflict is a normal return value, not an error; the caller must check
// HasConflict before persisting the assignment.
type Assessment struct {
	HasConflict   bool   `json:"has_conflict"`
	CanRecycle    bool   `json:"can_recycle"`
	Reason        string `json:"reason,omitempty"`
	ExistingOwner *Owner `json:"existing_owner,omitempty"`
}

// IsOwnerActive reports whether an owner of cohort year angkatan is still
// inside the active window. The boundary is inclusive: a gap equal to
// activeWindowYears still counts as active.
func IsOwnerActive(angkatan, currentYear, activeWindowYears int) bool {
	return currentYear-angkatan <= activeWindowYears
}

// AssessConflict decides whether a code held by existing may be taken over
// by the person identified by requestingNIM. currentYear is passed in
// explicitly so the policy stays reproducible in tests.
//
// No owner, or the same person updating their own record, is never a
// conflict. A different person conflicts only while the current owner is
// still active; once the owner ages out of the window the code becomes
// recyclable and the caller is expected to expire the owner's record so
// the code leaves the active set.
func AssessConflict(existing *Owner, requestingNIM string, currentYear, activeWindowYears int) Assessment {
	if existing == nil {
		return Assessment{HasConflict: false, CanRecycle: true}
	}

	if existing.NIM == requestingNIM {
		return Assessment{
			HasConflict:   false,
			CanRecycle:    false,
			ExistingOwner: existing,
		}
	}

	if !IsOwnerActive(existing.Angkatan, currentYear, activeWindowYears) {
		return Assessment{
			HasConflict:   false,
			CanRecycle:    true,
			Reason:        "previous owner is inactive, code can be recycled",
			ExistingOwner: existing,
		}
	}

	return Assessment{
		HasConflict:   true,
		CanRecycle:    false,
		Reason:        fmt.Sprintf("code is currently assigned to active asprak: %s", existing.FullName),
		ExistingOwner: existing,
	}
}

// ConflictErrorMessage formats the blocking error surfaced to users when an
// active owner prevents a code assignment.
func ConflictErrorMessage(code string, owner *Owner) string {
	return fmt.Sprintf(
		"CONFLICT: code %q is currently assigned to %s (%s) who is still active. Codes can only be recycled after the owner becomes inactive.",
		code, owner.FullName, owner.NIM,
	)
}
