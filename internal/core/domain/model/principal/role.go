package principal

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Role identifies the kind of actor behind an authenticated request.
//
// Client, Owner and Delivery are the only roles a Principal may carry. Any is
// a wildcard used exclusively in operation role tables and subscription
// predicates; it is never a valid role for an actual principal.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// Client orders food and may only see their own orders.
	Client

	// Owner runs one or more restaurants and sees their restaurants' orders.
	Owner

	// Delivery picks up cooked orders and sees orders assigned to them.
	Delivery

	// Any is the wildcard entry for role tables. Principal.Validate rejects it.
	Any
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		Client:      "Client",
		Owner:       "Owner",
		Delivery:    "Delivery",
		Any:         "Any",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown and Any are intentionally excluded
	return map[Role]string{
		Client:   "Client",
		Owner:    "Owner",
		Delivery: "Delivery",
	}
}

// Validate checks that the role is one a principal may actually hold:
// Client, Owner or Delivery. RoleUnknown and the Any wildcard are rejected.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid principal role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// It implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// RoleFromString parses a role name as carried on the wire ("Client",
// "Owner", "Delivery"). The wildcard and unknown names are rejected.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid principal role", s))
}
