package services

import (
	"testing"

	"github.com/amrit073/NEPGA/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStatus(t *testing.T) {
	lc := NewLifecycle(false)

	for _, s := range entity.Statuses {
		got, err := lc.ValidateStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, bad := range []string{"", "pending", "APPROVED", "Done", " Pending", "Cancelled"} {
		_, err := lc.ValidateStatus(bad)
		assert.ErrorIs(t, err, ErrInvalidStatus, "candidate %q", bad)
	}
}

func TestPermissiveLifecycle_AllowsAnyMember(t *testing.T) {
	lc := NewLifecycle(false)

	for _, from := range entity.Statuses {
		for _, to := range entity.Statuses {
			app := &entity.Application{Status: from}
			require.NoError(t, lc.Apply(app, string(to)), "%s -> %s", from, to)
			assert.Equal(t, to, app.Status)
		}
	}
}

func TestApply_InvalidLeavesStatusUntouched(t *testing.T) {
	for _, strict := range []bool{false, true} {
		lc := NewLifecycle(strict)
		app := &entity.Application{Status: entity.StatusProcessing}

		err := lc.Apply(app, "Archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Equal(t, entity.StatusProcessing, app.Status)
	}
}

func TestStrictLifecycle(t *testing.T) {
	lc := NewLifecycle(true)
	require.True(t, lc.Strict())

	allowed := []struct{ from, to entity.Status }{
		{entity.StatusPending, entity.StatusProcessing},
		{entity.StatusPending, entity.StatusRejected},
		{entity.StatusProcessing, entity.StatusApproved},
		{entity.StatusProcessing, entity.StatusRejected},
		{entity.StatusProcessing, entity.StatusPending},
		{entity.StatusApproved, entity.StatusApproved},
		{entity.StatusRejected, entity.StatusRejected},
	}
	for _, tc := range allowed {
		assert.True(t, lc.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to entity.Status }{
		{entity.StatusPending, entity.StatusApproved},
		{entity.StatusApproved, entity.StatusPending},
		{entity.StatusApproved, entity.StatusRejected},
		{entity.StatusRejected, entity.StatusProcessing},
	}
	for _, tc := range denied {
		assert.False(t, lc.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)

		app := &entity.Application{Status: tc.from}
		err := lc.Apply(app, string(tc.to))
		assert.ErrorIs(t, err, ErrTransitionNotAllowed)
		assert.Equal(t, tc.from, app.Status)
	}
}
