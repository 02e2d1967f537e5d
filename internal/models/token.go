package models

// Token is a signed bearer credential returned by the auth endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewToken wraps a signed token string in the bearer envelope.
func NewToken(accessToken string) Token {
	return Token{AccessToken: accessToken, TokenType: "bearer"}
}
