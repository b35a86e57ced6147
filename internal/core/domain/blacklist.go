package domain

import "time"

// BlacklistEntry records an access token revoked before its natural expiry.
// Entries are never updated and never expired from the relational store.
type BlacklistEntry struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
