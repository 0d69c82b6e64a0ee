package commands

import (
	"errors"
	"strings"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
	"fasttrack/internal/pkg/guard"
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 8

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a merchant signing up. Public registration
// always produces merchant accounts; admins are provisioned out of band.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	fullName string

	businessName string
	phone        string
	address      string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. The plaintext
// password lives only inside the command; the handler stores a bcrypt hash.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email, password, fullName string,
	businessName, phone, address string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return RegisterUserCommand{}, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("email")
	}
	if len(password) < minPasswordLength {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("password")
	}
	if fullName == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("fullName")
	}

	cmd.userID = userID
	cmd.email = email
	cmd.password = password
	cmd.fullName = fullName
	cmd.businessName = businessName
	cmd.phone = phone
	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }

// Email returns the normalized sign-in email.
func (c RegisterUserCommand) Email() string { return c.email }

// Password returns the plaintext password to hash.
func (c RegisterUserCommand) Password() string { return c.password }

// FullName returns the account holder's name.
func (c RegisterUserCommand) FullName() string { return c.fullName }

// BusinessName returns the optional business name.
func (c RegisterUserCommand) BusinessName() string { return c.businessName }

// Phone returns the optional contact phone.
func (c RegisterUserCommand) Phone() string { return c.phone }

// Address returns the optional default pickup address.
func (c RegisterUserCommand) Address() string { return c.address }
