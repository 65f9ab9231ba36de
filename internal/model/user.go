package model

// User is an account that owns items. Users are created out-of-band and never
// change identity afterwards.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// TokenRequest is the form body of a password grant.
type TokenRequest struct {
	GrantType string
	Username  string
	Password  string
}

// TokenResponse is returned by a successful password grant.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
