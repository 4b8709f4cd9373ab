// Package auth contains domain-level types for authentication and
// request-scoped identity. It is pure and free of framework/adapter concerns.
package auth

import (
	"time"
)

// Role represents an application's authorization role.
// Kept in string form for easy persistence on the user record.
// Valid values are defined as constants below. A user's role list may
// reference names outside this set (e.g. a role later removed from the
// catalog); such names simply never satisfy any route requirement.
type Role string

const (
	RoleAdmin Role = "ROLE_ADMIN"
	RoleUser  Role = "ROLE_USER"
)

// TokenClaims is the decoded content of a signed bearer token.
// ExpiresAt is the signature-embedded expiry; it is independent of the
// server-side expiry stored on the user record and both must be
// checked by the caller.
type TokenClaims struct {
	Subject   string // user email, the token's subject identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the authenticated identity attached to a request after
// the guard has fully verified its token. It lives only for the
// duration of the request.
type Principal struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Roles  []Role `json:"roles"`
}

// HasAnyRole reports whether the principal holds at least one of the
// given roles. Matching is exact string membership; RoleAdmin does not
// implicitly satisfy a RoleUser requirement.
func (p Principal) HasAnyRole(required ...Role) bool {
	for _, want := range required {
		for _, have := range p.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
