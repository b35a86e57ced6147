package domain

import "time"

// Role is the authorization level of a user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// CanModerate reports whether the role may moderate other users' content.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleModerator
}

// User represents an account of the application in the domain.
// Email is unique and is the key used by both the session cache and the
// token blacklist.
type User struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	Avatar             string    `json:"avatar"`
	Role               Role      `json:"role"`
	Confirmed          bool      `json:"confirmed"`
	Banned             bool      `json:"banned"`
	RefreshToken       string    `json:"-"` // currently active refresh token, empty when revoked
	ResetPasswordToken string    `json:"-"` // one-time password reset token, empty when unset
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
