package claims

import jwt "github.com/dgrijalva/jwt-go"

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

// Claims is the payload of an access token. Data carries the password of
// the authenticated user verbatim; a known weakness kept for compatibility
// with existing clients.
type Claims struct {
	Data string `json:"data"`
	jwt.StandardClaims
}
