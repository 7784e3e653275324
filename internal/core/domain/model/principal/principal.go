package principal

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the authenticated actor making a request. The transport layer
// resolves credentials and hands the core a Principal; the core never touches
// tokens itself. A principal's role is fixed for the lifetime of a request.
//
// Principal is an immutable value object.
type Principal struct { //nolint:recvcheck //using for validation
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal with a validated id and role.
// The Any wildcard is not accepted as a principal role.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	p := Principal{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setRole(role),
	); err != nil {
		return Principal{}, err
	}

	return p, nil
}

// Validate ensures the principal was created through NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the principal's unique identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the principal's role.
func (p Principal) Role() Role {
	return p.role
}

func (p *Principal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
