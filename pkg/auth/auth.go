// Package auth is the credential stub: a fixed identity table checked at
// login, returning a signed token for the session. It is a collaborator of
// the core, not part of it; nothing here is meant to survive a real
// multi-user deployment.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/daylog/pkg/store"
)

// ErrInvalidCredentials is returned when the username or password does not
// match the static table. No state changes on a failed login.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Local session signing key. The token only gates the local remembered
// identity, it is not a network credential.
var signingKey = []byte("daylog-local-session")

// The static identity table. Passwords are hashed at init so the comparison
// path is the same one a real table would use.
var credentials = func() map[string][]byte {
	seed := map[string]string{
		"demo":  "demo123",
		"guest": "guest",
	}
	table := make(map[string][]byte, len(seed))
	for user, pass := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		table[user] = hash
	}
	return table
}()

// Login checks the credential table and returns a signed identity token.
func Login(username, password string) (string, error) {
	hash, ok := credentials[username]
	if !ok {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return issueToken(username)
}

func issueToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  username,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify checks a token and returns the identity it names.
func Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("auth: verify token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("auth: token missing identity")
	}
	return claims.Subject, nil
}

// RememberedIdentity resolves the optional auto-login identity from the
// store. A missing or stale token degrades to logged-out, never an error.
func RememberedIdentity(p store.Persistence) (string, bool) {
	identity, token, ok := p.Remembered()
	if !ok {
		return "", false
	}
	verified, err := Verify(token)
	if err != nil || verified != identity {
		return "", false
	}
	return identity, true
}
