package models

// ✅ Action Types (liked, notliked)
const (
	ActionLiked    = "liked"
	ActionNotLiked = "notliked"
)

// ✅ Match outcomes returned by the match engine
const (
	OutcomePending  = "pending"
	OutcomeNewMatch = "match"
)

// ✅ Relay results
const (
	RelayDelivered      = "delivered"
	RelayQuotaExhausted = "quotaExhausted"
)

// MessageQuota is the number of anonymous messages each side may send within
// one active match session before the contact exchange is offered.
const MessageQuota = 5
