package domain

// GoogleUserInfo holds the subset of the Google userinfo payload the
// application consumes when signing a user in with Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
