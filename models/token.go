package models

import "time"

// Token is a signed session token. It is issued on login and recovered from
// the session cookie or the bearer header of later requests.
type Token struct {
	// SignedString is the compact form handed to the client.
	SignedString string

	// UserID is the subject of the token.
	UserID int64

	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (t Token) String() string {
	return t.SignedString
}

