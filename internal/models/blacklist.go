package models

// BlacklistEntry represents a row of the blacklists table.
type BlacklistEntry struct {
	ID    int64  `db:"id"`
	Token string `db:"token"`
	Email string `db:"email"`
	Timestamps
}
