package entities

import (
	"errors"
	"fmt"
	"strings"
)

// validTransitions is the authoritative rule table: for each dossier type, a
// directed adjacency map from a status to the statuses it may move to. Every
// reachable status appears as a key; an empty edge set marks a terminal state.
// Keeping this as data (not code branches) means a fifth dossier type is a new
// table entry, not new validation logic.
var validTransitions = map[DossierType]map[DossierStatus][]DossierStatus{
	DossierTypeShipping: {
		ShippingReceived:  {ShippingPreparing},
		ShippingPreparing: {ShippingShipped},
		ShippingShipped:   {ShippingDelivered, ShippingIssue},
		ShippingDelivered: {ShippingIssue},
		ShippingIssue:     {ShippingPreparing, ShippingShipped},
	},
	DossierTypeAdminEnedis: {
		AdminNotStarted: {AdminInProgress},
		AdminInProgress: {AdminValidated, AdminRejected},
		AdminRejected:   {AdminInProgress},
		AdminValidated:  {},
	},
	DossierTypeAdminConsuel: {
		AdminNotStarted: {AdminInProgress},
		AdminInProgress: {AdminValidated, AdminRejected},
		AdminRejected:   {AdminInProgress},
		AdminValidated:  {},
	},
	DossierTypeInstallation: {
		InstallationVTPending:   {InstallationVTCompleted},
		InstallationVTCompleted: {InstallationAwaitingBE},
		InstallationAwaitingBE:  {InstallationValidated},
		InstallationValidated:   {},
	},
}

var initialStatuses = map[DossierType]DossierStatus{
	DossierTypeShipping:     ShippingReceived,
	DossierTypeAdminEnedis:  AdminNotStarted,
	DossierTypeAdminConsuel: AdminNotStarted,
	DossierTypeInstallation: InstallationVTPending,
}

// Sentinel causes carried by TransitionError.
var (
	ErrUnknownDossierType   = errors.New("unknown dossier type")
	ErrInvalidCurrentStatus = errors.New("current status invalid for dossier type")
	ErrIllegalTransition    = errors.New("status transition not allowed")
)

// TransitionError is a rejected status change. AllowedNext carries the legal
// next statuses from the current state so callers can present them.
type TransitionError struct {
	Type        DossierType
	From        DossierStatus
	To          DossierStatus
	Reason      error
	AllowedNext []DossierStatus
}

func (e *TransitionError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrUnknownDossierType):
		return fmt.Sprintf("unknown dossier type %q", e.Type)
	case errors.Is(e.Reason, ErrInvalidCurrentStatus):
		return fmt.Sprintf("status %q is not valid for dossier type %q", e.From, e.Type)
	default:
		return fmt.Sprintf("transition from %q to %q not allowed for dossier type %q (allowed: %s)",
			e.From, e.To, e.Type, joinStatuses(e.AllowedNext))
	}
}

func (e *TransitionError) Unwrap() error { return e.Reason }

func joinStatuses(statuses []DossierStatus) string {
	if len(statuses) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

// ValidateTransition checks a requested status change against the rule table.
// It is pure: no storage, no side effects. A nil return means the change is
// legal; any failure is a *TransitionError.
func ValidateTransition(t DossierType, current, next DossierStatus) error {
	table, ok := validTransitions[t]
	if !ok {
		return &TransitionError{Type: t, From: current, To: next, Reason: ErrUnknownDossierType}
	}

	allowed, ok := table[current]
	if !ok {
		// The stored record should never reach this state; guards against
		// data corruption or a type/status mismatch.
		return &TransitionError{Type: t, From: current, To: next, Reason: ErrInvalidCurrentStatus, AllowedNext: []DossierStatus{}}
	}

	for _, s := range allowed {
		if s == next {
			return nil
		}
	}
	return &TransitionError{
		Type:        t,
		From:        current,
		To:          next,
		Reason:      ErrIllegalTransition,
		AllowedNext: append([]DossierStatus(nil), allowed...),
	}
}

// InitialStatus returns the status a freshly created dossier of the given
// type starts in.
func InitialStatus(t DossierType) (DossierStatus, error) {
	s, ok := initialStatuses[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDossierType, t)
	}
	return s, nil
}

// AllowedTransitions returns the legal next statuses from the given state,
// or nil when the type or status is unknown.
func AllowedTransitions(t DossierType, current DossierStatus) []DossierStatus {
	table, ok := validTransitions[t]
	if !ok {
		return nil
	}
	allowed, ok := table[current]
	if !ok {
		return nil
	}
	return append([]DossierStatus(nil), allowed...)
}

// IsFinalStatus reports whether no transition leaves the given state.
func IsFinalStatus(t DossierType, current DossierStatus) bool {
	table, ok := validTransitions[t]
	if !ok {
		return false
	}
	allowed, ok := table[current]
	if !ok {
		return false
	}
	return len(allowed) == 0
}

// KnownStatuses lists every status the rule table knows for a type, used when
// decoding stored records.
func KnownStatuses(t DossierType) []DossierStatus {
	table, ok := validTransitions[t]
	if !ok {
		return nil
	}
	out := make([]DossierStatus, 0, len(table))
	for s := range table {
		out = append(out, s)
	}
	return out
}
