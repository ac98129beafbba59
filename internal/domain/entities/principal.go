package entities

// Role is the coarse authorization role attached to a request principal.

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Principal is the authenticated caller as supplied by the identity layer in
// front of this service. Identity verification itself happens upstream.
type Principal struct {
	SubjectID string
	Role      Role
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// CanAccessOrder reports whether the principal may act on an order owned by
// ownerID: admins may act on any order, everyone else only on their own.
func (p Principal) CanAccessOrder(ownerID string) bool {
	if p.IsAdmin() {
		return true
	}
	return p.SubjectID != "" && p.SubjectID == ownerID
}

// EventSource maps the principal to the audit-event source recorded for
// mutations it causes.
func (p Principal) EventSource() EventSource {
	if p.IsAdmin() {
		return EventSourceAdmin
	}
	return EventSourceClient
}
