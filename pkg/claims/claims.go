package claims

import jwt "github.com/dgrijalva/jwt-go"

type contextKey string

const (
	SessionContextKey contextKey = "session"
)

// Claims is the payload of the signed session cookie. It carries only
// the opaque session ID; authentication state lives in the session
// store, never in the cookie.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.StandardClaims
}
