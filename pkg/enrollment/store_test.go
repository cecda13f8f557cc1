package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhq/collabhub/pkg/campaign"
)

func TestStoreRevision(t *testing.T) {
	store := NewStore()

	t.Run("Success - Add bumps the revision", func(t *testing.T) {
		before := store.Revision()
		store.Add(&Enrollment{ID: "e1", Campaign: campaign.FallbackCampaigns[0], Status: StatusEnrolled})
		assert.Greater(t, store.Revision(), before)
	})

	t.Run("Success - Update bumps only when the mutation applies", func(t *testing.T) {
		before := store.Revision()

		_, ok := store.Update("e1", func(e *Enrollment) bool { return false })
		require.True(t, ok)
		assert.Equal(t, before, store.Revision())

		_, ok = store.Update("e1", func(e *Enrollment) bool {
			e.Status = StatusUploaded
			return true
		})
		require.True(t, ok)
		assert.Greater(t, store.Revision(), before)
	})

	t.Run("Success - Remove bumps the revision", func(t *testing.T) {
		before := store.Revision()
		require.True(t, store.Remove("e1"))
		assert.Greater(t, store.Revision(), before)
		assert.False(t, store.Remove("e1"))
	})
}

func TestStoreCopies(t *testing.T) {
	store := NewStore()
	store.Add(&Enrollment{ID: "e1", Status: StatusEnrolled})

	t.Run("Success - Get returns a copy", func(t *testing.T) {
		e, ok := store.Get("e1")
		require.True(t, ok)
		e.Status = StatusApproved

		again, _ := store.Get("e1")
		assert.Equal(t, StatusEnrolled, again.Status)
	})

	t.Run("Success - ApprovedCount counts only approved", func(t *testing.T) {
		assert.Equal(t, 0, store.ApprovedCount())

		store.Add(&Enrollment{ID: "e2", Status: StatusApproved})
		store.Add(&Enrollment{ID: "e3", Status: StatusApproved})
		store.Add(&Enrollment{ID: "e4", Status: StatusRejected})
		assert.Equal(t, 2, store.ApprovedCount())
	})
}
