// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the authorization level of a user account.
type Role string

const (
	// RoleCustomer is assigned to accounts created through Google sign-in.
	RoleCustomer Role = "customer"
	// RoleAdmin may manage the catalog and the quote inbox.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Roles is the set of roles carried by an access token.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings returns the claim values stored in a token.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}

	return out
}

// RolesFromStrings parses token claims. Unknown roles are dropped so a token
// minted by a newer release never grants anything here.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(s); r.IsValid() {
			out = append(out, r)
		}
	}

	return out
}
