package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal_CanAccessOrder(t *testing.T) {
	owner := Principal{SubjectID: "user-1", Role: RoleClient}
	assert.True(t, owner.CanAccessOrder("user-1"))
	assert.False(t, owner.CanAccessOrder("user-2"))

	admin := Principal{SubjectID: "back-office", Role: RoleAdmin}
	assert.True(t, admin.CanAccessOrder("anyone"))

	anonymous := Principal{Role: RoleClient}
	assert.False(t, anonymous.CanAccessOrder(""), "empty subject never matches, even an empty owner")
}

func TestPrincipal_EventSource(t *testing.T) {
	assert.Equal(t, EventSourceAdmin, Principal{Role: RoleAdmin}.EventSource())
	assert.Equal(t, EventSourceClient, Principal{SubjectID: "user-1", Role: RoleClient}.EventSource())
}
