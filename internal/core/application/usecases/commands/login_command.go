package commands

import (
	"errors"
	"strings"

	"fasttrack/internal/pkg/errs"
	"fasttrack/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a sign-in attempt.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a sign-in command.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("password")
	}

	cmd.email = email
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the normalized sign-in email.
func (c LoginCommand) Email() string { return c.email }

// Password returns the submitted plaintext password.
func (c LoginCommand) Password() string { return c.password }
