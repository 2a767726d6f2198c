package middleware

import (
	"context"
	"fmt"
	"net/http"

	"friendbook/pkg/claims"
	"friendbook/pkg/session"

	jwt "github.com/dgrijalva/jwt-go"
)

/*
CheckAuth is the gate in front of every friends route. Per request it
walks the same steps every time, with no caching between requests:

 1. resolve the session cookie to a {token, username} binding,
 2. verify the token's signature and expiry,
 3. attach the decoded payload to the context and forward.

Failing step 1 means the user is not logged in; failing step 2 means the
session exists but its token no longer holds up. Both are terminal.
*/
func CheckAuth(sessions *session.Manager, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessions.Authorization(r)
			if err != nil {
				writeForbidden(w, "The user is not logged in!")
				return
			}

			keyFunc := func(token *jwt.Token) (interface{}, error) {
				method, ok := token.Method.(*jwt.SigningMethodHMAC)
				if !ok || method.Alg() != "HS256" {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			}

			tokenClaims := &claims.Claims{}
			token, err := jwt.ParseWithClaims(sess.Token, tokenClaims, keyFunc)
			if err != nil || !token.Valid {
				writeForbidden(w, fmt.Sprintf("User %s is not authenticated", sess.Username))
				return
			}

			ctx := context.WithValue(r.Context(), claims.TokenContextKey, tokenClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeForbidden(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	fmt.Fprintf(w, `{"message":%q}`, msg)
}
