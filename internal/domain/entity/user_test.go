package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAccountStatus(t *testing.T) {
	for _, raw := range []string{"pending", "approved", "suspended"} {
		status, err := ParseAccountStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, AccountStatus(raw), status)
	}

	_, err := ParseAccountStatus("banned")
	assert.Error(t, err)
}

func TestIsStatusTransitionAllowed(t *testing.T) {
	tests := []struct {
		name    string
		from    AccountStatus
		to      AccountStatus
		allowed bool
	}{
		{"pending to approved", AccountPending, AccountApproved, true},
		{"pending to suspended", AccountPending, AccountSuspended, true},
		{"approved to suspended", AccountApproved, AccountSuspended, true},
		{"approved back to pending", AccountApproved, AccountPending, true},
		{"suspended to approved", AccountSuspended, AccountApproved, true},
		{"suspended to pending", AccountSuspended, AccountPending, true},
		{"pending to itself", AccountPending, AccountPending, false},
		{"unknown source", AccountStatus("banned"), AccountApproved, false},
		{"unknown target", AccountApproved, AccountStatus("banned"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, IsStatusTransitionAllowed(tt.from, tt.to))
		})
	}
}

func TestSubscriptionIsExpired(t *testing.T) {
	now := time.Now()

	active := &Subscription{Active: true, ExpiresAt: now.Add(time.Hour)}
	assert.False(t, active.IsExpired(now))

	lapsed := &Subscription{Active: true, ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, lapsed.IsExpired(now))

	// An already deactivated subscription never reports as expired again.
	inactive := &Subscription{Active: false, ExpiresAt: now.Add(-time.Hour)}
	assert.False(t, inactive.IsExpired(now))
}

func TestHasActiveSubscription(t *testing.T) {
	now := time.Now()

	user := &User{}
	assert.False(t, user.HasActiveSubscription(now))

	user.Subscription = &Subscription{Active: true, ExpiresAt: now.Add(24 * time.Hour)}
	assert.True(t, user.HasActiveSubscription(now))

	user.Subscription.ExpiresAt = now.Add(-time.Minute)
	assert.False(t, user.HasActiveSubscription(now))
}
