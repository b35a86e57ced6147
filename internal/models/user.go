package models

import "database/sql"

// User represents a row of the users table.
type User struct {
	ID                 int64          `db:"id"`
	Username           string         `db:"username"`
	Email              string         `db:"email"`
	PasswordHash       string         `db:"password_hash"`
	Avatar             string         `db:"avatar"`
	Role               string         `db:"role"`
	Confirmed          bool           `db:"confirmed"`
	Banned             bool           `db:"banned"`
	RefreshToken       sql.NullString `db:"refresh_token"`
	ResetPasswordToken sql.NullString `db:"reset_password_token"`
	Timestamps
}
