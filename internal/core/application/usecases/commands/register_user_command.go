package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to provision a user reference.
// Used by the startup seeder; credential management lives outside this
// system.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	firstName   string
	lastName    string
	permissions []string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to provision a user reference.
func NewRegisterUserCommand(
	userID kernel.UUID,
	firstName string,
	lastName string,
	permissions []string,
) (RegisterUserCommand, error) {
	userCommand := RegisterUserCommand{
		lastName: lastName,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setFirstName(firstName),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	userCommand.permissions = make([]string, len(permissions))
	copy(userCommand.permissions, permissions)

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier the user will be created under.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// FirstName returns the user's first name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the user's last name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

// Permissions returns a copy of the permission strings to grant.
func (c RegisterUserCommand) Permissions() []string {
	permissions := make([]string, len(c.permissions))
	copy(permissions, c.permissions)
	return permissions
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}

	c.firstName = firstName
	return nil
}
