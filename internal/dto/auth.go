package dto

// SignupRequest is the payload for account registration.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignupResponse wraps the created user summary.
type SignupResponse struct {
	User   UserResponse `json:"user"`
	Detail string       `json:"detail"`
}

// LoginRequest carries the login form fields. The username field holds the
// email address, mirroring the OAuth2 password flow.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenPair is the bearer credential pair returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// GoogleSignInRequest carries a Google ID token for social sign-in.
type GoogleSignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// GoogleAuthURLResponse carries the consent URL for the authorization
// code flow plus the state echoed back on the callback.
type GoogleAuthURLResponse struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}

// EmailRequest carries a bare email address, used by the resend
// confirmation and forgot password endpoints.
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a previously issued reset token.
type ResetPasswordRequest struct {
	Email              string `json:"email" binding:"required,email"`
	ResetPasswordToken string `json:"reset_password_token" binding:"required"`
	Password           string `json:"password" binding:"required,min=6"`
	ConfirmPassword    string `json:"confirm_password" binding:"required"`
}

// MessageResponse is a generic informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}
