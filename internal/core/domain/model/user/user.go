// Package user provides the weak user reference the order core needs:
// identity, display name, and the permission strings the authorization
// layer checks. Credential management lives outside this system.
package user

import (
	"errors"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// ErrAccessDenied is returned when a user acts on an order they neither
// own nor have administrative rights over.
var ErrAccessDenied = errors.New("user is not allowed to access this order")

// PermissionReadUsers is the permission that marks administrators.
// A holder may act on any order and browse the full error log.
const PermissionReadUsers = "can_read_users"

// User is a reference to an account: identity plus the attributes the
// order flow reads (display name for diagnostics, permissions for
// owner-or-admin checks).
type User struct {
	id          kernel.UUID
	firstName   string
	lastName    string
	permissions []string

	isConstructed bool
}

// NewUser creates a user reference with validation.
func NewUser(id kernel.UUID, firstName, lastName string, permissions []string) (*User, error) {
	u := &User{
		lastName:      lastName,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setFirstName(firstName),
	); err != nil {
		return nil, err
	}

	u.permissions = make([]string, len(permissions))
	copy(u.permissions, permissions)
	return u, nil
}

// RestoreUser reconstructs a User from persisted state.
// Intended for repository adapters only.
func RestoreUser(id kernel.UUID, firstName, lastName string, permissions []string) (*User, error) {
	return NewUser(id, firstName, lastName, permissions)
}

// Validate ensures the User was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns "First Last" for diagnostics and display.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.firstName, u.lastName)
}

// Permissions returns a copy of the user's permission strings.
func (u *User) Permissions() []string {
	permissions := make([]string, len(u.permissions))
	copy(permissions, u.permissions)
	return permissions
}

// HasPermission reports whether the user holds the given permission.
func (u *User) HasPermission(permission string) bool {
	for _, p := range u.permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user may act on orders they do not own.
func (u *User) IsAdmin() bool {
	return u.HasPermission(PermissionReadUsers)
}

// CanAccessOrder reports whether the user may view or cancel an order
// owned by the given user: owners and admins only.
func (u *User) CanAccessOrder(ownerID kernel.UUID) bool {
	return u.id.IsEqual(ownerID) || u.IsAdmin()
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	u.firstName = firstName
	return nil
}
