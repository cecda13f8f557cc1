package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusNext(t *testing.T) {
	t.Run("Success - Linear order", func(t *testing.T) {
		next, ok := StatusEnrolled.Next()
		assert.True(t, ok)
		assert.Equal(t, StatusUploaded, next)

		next, ok = StatusUploaded.Next()
		assert.True(t, ok)
		assert.Equal(t, StatusProcessing, next)

		next, ok = StatusProcessing.Next()
		assert.True(t, ok)
		assert.Equal(t, StatusUnderReview, next)

		next, ok = StatusUnderReview.Next()
		assert.True(t, ok)
		assert.Equal(t, StatusApproved, next)
	})

	t.Run("Success - Terminal states have no next", func(t *testing.T) {
		_, ok := StatusApproved.Next()
		assert.False(t, ok)

		_, ok = StatusRejected.Next()
		assert.False(t, ok)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusEnrolled.IsTerminal())
	assert.False(t, StatusUploaded.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.False(t, StatusUnderReview.IsTerminal())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusEnrolled, StatusUploaded, StatusProcessing, StatusUnderReview, StatusApproved, StatusRejected} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}
