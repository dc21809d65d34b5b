package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrActorContextIsNotConstructed is returned when validating a zero-value
// ActorContext that bypassed the NewActorContext constructor.
var ErrActorContextIsNotConstructed = errs.NewValueIsRequiredError("ActorContext must be created via NewActorContext")

// Role identifies the kind of actor performing a core operation.
// It is a closed enumeration; unknown role strings are rejected at the boundary.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleClient is a buyer who creates orders and confirms deliveries.
	RoleClient

	// RoleTraveler fulfills order items: claims, ships, confirms, uploads proof.
	RoleTraveler

	// RoleAdmin arbitrates disputes and may release escrowed payments.
	RoleAdmin

	// RoleSystem is the platform itself, used by scheduled jobs and
	// payment-processing callbacks.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleClient:   "client",
		RoleTraveler: "traveler",
		RoleAdmin:    "admin",
		RoleSystem:   "system",
	}
}

// RoleFromString parses a role arriving from the auth layer.
// Unknown values yield an error rather than a zero Role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire-level name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ActorContext carries the verified identity of the caller into every core
// operation. The auth layer constructs it once per request; core code never
// reads identity from ambient state.
//
// Example:
//
//	actor, err := kernel.NewActorContext(travelerID, kernel.RoleTraveler)
//	if err != nil {
//	    return err
//	}
//	cmd, err := commands.NewClaimItemCommand(actor, itemID)
type ActorContext struct {
	id   UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActorContext creates a validated actor context.
// The identity is assumed to be already authenticated by the auth layer.
func NewActorContext(id UUID, role Role) (ActorContext, error) {
	if err := id.Validate(); err != nil {
		return ActorContext{}, err
	}
	if err := role.Validate(); err != nil {
		return ActorContext{}, err
	}

	return ActorContext{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the actor's identity.
func (a ActorContext) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a ActorContext) Role() Role {
	return a.role
}

// HasRole reports whether the actor holds one of the given roles.
func (a ActorContext) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if a.role == role {
			return true
		}
	}
	return false
}

// Validate checks that the ActorContext was created via NewActorContext.
func (a ActorContext) Validate() error {
	return a.guard.Validate(ErrActorContextIsNotConstructed)
}
