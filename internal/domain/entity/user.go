package entity

import (
	"fmt"
	"time"
)

// AccountStatus values mirror the accountStatus field on user documents.
type AccountStatus string

const (
	AccountPending   AccountStatus = "pending"
	AccountApproved  AccountStatus = "approved"
	AccountSuspended AccountStatus = "suspended"
)

// validStatusTransitions lists every allowed (from -> to) pair. Approval
// grants a subscription; demotion to pending or suspension deactivates it.
var validStatusTransitions = map[AccountStatus][]AccountStatus{
	AccountPending:   {AccountApproved, AccountSuspended},
	AccountApproved:  {AccountPending, AccountSuspended},
	AccountSuspended: {AccountApproved, AccountPending},
}

// ParseAccountStatus converts a raw string to an AccountStatus, returning an
// error for unknown values.
func ParseAccountStatus(s string) (AccountStatus, error) {
	st := AccountStatus(s)
	switch st {
	case AccountPending, AccountApproved, AccountSuspended:
		return st, nil
	}
	return "", fmt.Errorf("unknown account status %q", s)
}

// IsStatusTransitionAllowed reports whether moving from -> to is permitted.
func IsStatusTransitionAllowed(from, to AccountStatus) bool {
	allowed, ok := validStatusTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Subscription is the sub-document written when an admin approves a user.
type Subscription struct {
	Plan        string    `json:"plan" firestore:"plan"`
	ActivatedAt time.Time `json:"activatedAt" firestore:"activatedAt"`
	ExpiresAt   time.Time `json:"expiresAt" firestore:"expiresAt"`
	Active      bool      `json:"active" firestore:"active"`
}

// IsExpired reports whether an active subscription has lapsed.
func (s *Subscription) IsExpired(now time.Time) bool {
	return s.Active && now.After(s.ExpiresAt)
}

// TokenClaims carries the verified identity decoded from a Firebase ID
// token, including the profile claims OAuth providers attach to it.
type TokenClaims struct {
	UID      string
	Provider string
	Email    string
	Name     string
	Picture  string
}

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"displayName" firestore:"displayName"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	Provider    string `json:"provider,omitempty" firestore:"provider,omitempty"`

	Role          string        `json:"role" firestore:"role"`
	AccountStatus AccountStatus `json:"accountStatus" firestore:"accountStatus"`
	Subscription  *Subscription `json:"subscription,omitempty" firestore:"subscription,omitempty"`

	StoreSlug        string `json:"storeSlug,omitempty" firestore:"storeSlug,omitempty"`
	ProfileCompleted bool   `json:"profileCompleted" firestore:"profileCompleted"`

	FCMTokens []string `json:"fcmTokens,omitempty" firestore:"fcmTokens,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// IsAdmin reports whether the user holds the platform-operator role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// HasActiveSubscription reports whether the user holds a subscription that
// has not lapsed as of now.
func (u *User) HasActiveSubscription(now time.Time) bool {
	return u.Subscription != nil && u.Subscription.Active && now.Before(u.Subscription.ExpiresAt)
}
