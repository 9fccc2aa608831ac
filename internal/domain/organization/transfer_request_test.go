package organization

import (
	"testing"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransferRequest(t *testing.T) {
	orgID, sender, recipient := uuid.New(), uuid.New(), uuid.New()

	t.Run("creates pending request", func(t *testing.T) {
		r, err := NewTransferRequest(orgID, sender, recipient, "taking a break")
		require.Nil(t, err)
		require.NotNil(t, r)

		assert.Equal(t, TransferStatusPending, r.Status)
		assert.True(t, r.IsPending())
	})

	t.Run("rejects self transfer", func(t *testing.T) {
		r, err := NewTransferRequest(orgID, sender, sender, "")
		require.NotNil(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "yourself")
	})

	t.Run("requires organization", func(t *testing.T) {
		r, err := NewTransferRequest(uuid.Nil, sender, recipient, "")
		require.NotNil(t, err)
		assert.Nil(t, r)
	})
}

func TestTransferRequestTransitions(t *testing.T) {
	orgID, sender, recipient := uuid.New(), uuid.New(), uuid.New()

	newPending := func() *TransferRequest {
		r, err := NewTransferRequest(orgID, sender, recipient, "")
		require.Nil(t, err)
		return r
	}

	t.Run("accept from pending", func(t *testing.T) {
		r := newPending()
		require.Nil(t, r.Accept("welcome aboard"))
		assert.Equal(t, TransferStatusAccepted, r.Status)
		assert.Equal(t, "welcome aboard", r.ResponseMessage)
	})

	t.Run("reject from pending", func(t *testing.T) {
		r := newPending()
		require.Nil(t, r.Reject("not now"))
		assert.Equal(t, TransferStatusRejected, r.Status)
	})

	t.Run("cancel from pending", func(t *testing.T) {
		r := newPending()
		require.Nil(t, r.Cancel())
		assert.Equal(t, TransferStatusCancelled, r.Status)
	})

	t.Run("terminal states refuse further transitions", func(t *testing.T) {
		r := newPending()
		require.Nil(t, r.Accept(""))

		for name, op := range map[string]func() *shared.DomainError{
			"accept": func() *shared.DomainError { return r.Accept("") },
			"reject": func() *shared.DomainError { return r.Reject("") },
			"cancel": func() *shared.DomainError { return r.Cancel() },
		} {
			err := op()
			require.NotNil(t, err, name)
			assert.Equal(t, "INVALID_STATE", err.Code)
			assert.Contains(t, err.Error(), "accepted")
		}
	})

	t.Run("cancelled request cannot be accepted", func(t *testing.T) {
		r := newPending()
		require.Nil(t, r.Cancel())

		err := r.Accept("")
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "cancelled")
	})
}

func TestJoinRequestTransitions(t *testing.T) {
	orgID, userID := uuid.New(), uuid.New()

	t.Run("approve from pending", func(t *testing.T) {
		r, err := NewJoinRequest(orgID, userID, "let me in")
		require.Nil(t, err)

		require.Nil(t, r.Approve("welcome"))
		assert.Equal(t, JoinStatusApproved, r.Status)
	})

	t.Run("rejected request is terminal", func(t *testing.T) {
		r, _ := NewJoinRequest(orgID, userID, "")
		require.Nil(t, r.Reject("no room"))

		err := r.Approve("")
		require.NotNil(t, err)
		assert.Equal(t, "INVALID_STATE", err.Code)
		assert.Contains(t, err.Error(), "rejected")
	})
}

func TestParticipantManagement(t *testing.T) {
	orgID, userID := uuid.New(), uuid.New()

	t.Run("managed participant cannot be removed", func(t *testing.T) {
		p, err := NewParticipant(orgID, userID, true)
		require.Nil(t, err)
		assert.False(t, p.CanBeRemoved())

		require.Nil(t, p.Demote())
		assert.True(t, p.CanBeRemoved())
	})

	t.Run("promote and demote guard current state", func(t *testing.T) {
		p, _ := NewParticipant(orgID, userID, false)

		err := p.Demote()
		require.NotNil(t, err)
		assert.Equal(t, "INVALID_STATE", err.Code)

		require.Nil(t, p.Promote())
		err = p.Promote()
		require.NotNil(t, err)
	})
}

func TestOrganizationLifecycle(t *testing.T) {
	manager := uuid.New()

	t.Run("create assigns manager", func(t *testing.T) {
		o, err := NewOrganization("Neighbourhood Board", "", "district", manager)
		require.Nil(t, err)
		assert.Equal(t, manager, o.ManagerID)
		assert.False(t, o.Approved)
	})

	t.Run("approve is one-way", func(t *testing.T) {
		o, _ := NewOrganization("Neighbourhood Board", "", "", manager)
		require.Nil(t, o.Approve())

		err := o.Approve()
		require.NotNil(t, err)
		assert.Equal(t, "INVALID_STATE", err.Code)
	})
}
