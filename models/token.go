package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes short-lived access tokens from long-lived
// refresh tokens. Each type is signed with its own key.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims is the JWT payload issued by the server.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set and carries the
// identity fields handlers need without another database round trip.
type Claims struct {
	jwt.RegisteredClaims

	UserID   int64     `json:"uid"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
	Email    string    `json:"email,omitempty"`
	Type     TokenType `json:"typ"`
}

// IsAdmin reports whether the token belongs to an admin account.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Token is a signed JWT together with its decoded claims.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the decoded payload.
	Claims Claims `json:"-"`

	// ExpiresAt mirrors the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// TokenPair is the access/refresh pair returned on login and refresh.
type TokenPair struct {
	Access  Token
	Refresh Token
}
