package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// Role distinguishes platform operators from merchants.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin is a platform operator with full visibility.
	RoleAdmin

	// RoleMerchant is a sender who owns parcels and pickup requests.
	RoleMerchant
)

var roleNames = map[Role]string{
	RoleUnknown:  "unknown",
	RoleAdmin:    "admin",
	RoleMerchant: "merchant",
}

// ParseRole converts a wire-format name into a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a user role", s),
	)
}

// String returns the wire-format name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the Role is admin or merchant.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleMerchant {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid user role", r),
		)
	}
	return nil
}

// Status is the account lifecycle state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the account can sign in.
	StatusActive

	// StatusInactive means the account was voluntarily closed.
	StatusInactive

	// StatusSuspended means an admin blocked the account.
	StatusSuspended
)

var statusNames = map[Status]string{
	StatusUnknown:   "unknown",
	StatusActive:    "active",
	StatusInactive:  "inactive",
	StatusSuspended: "suspended",
}

// ParseStatus converts a wire-format name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not an account status", s),
	)
}

// String returns the wire-format name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid account status", s),
		)
	}
	return nil
}

// User is a platform account: an admin operator or a merchant sender.
// The password is stored only as a hash; the domain never sees plaintext.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	fullName     string
	role         Role
	status       Status

	// Merchant profile fields, empty for admins.
	businessName string
	phone        string
	address      string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewUser creates an active account. Email is normalized to lower case;
// uniqueness is enforced by the store.
func NewUser(
	id kernel.UUID,
	email, passwordHash, fullName string,
	role Role,
	businessName, phone, address string,
	now time.Time,
) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not an email address", email),
		)
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	if fullName == "" {
		return nil, errs.NewValueIsRequiredError("fullName")
	}

	now = now.UTC()
	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		fullName:      fullName,
		role:          role,
		status:        StatusActive,
		businessName:  businessName,
		phone:         phone,
		address:       address,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs an account from persistence.
func RestoreUser(
	id kernel.UUID,
	email, passwordHash, fullName string,
	role Role,
	status Status,
	businessName, phone, address string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		fullName:      fullName,
		role:          role,
		status:        status,
		businessName:  businessName,
		phone:         phone,
		address:       address,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the normalized sign-in email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// FullName returns the account holder's name.
func (u *User) FullName() string { return u.fullName }

// Role returns the account role.
func (u *User) Role() Role { return u.role }

// Status returns the account lifecycle state.
func (u *User) Status() Status { return u.status }

// BusinessName returns the merchant's business name, empty for admins.
func (u *User) BusinessName() string { return u.businessName }

// Phone returns the contact phone number.
func (u *User) Phone() string { return u.phone }

// Address returns the merchant's default address.
func (u *User) Address() string { return u.address }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last modification timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// IsAdmin reports whether the account is a platform operator.
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

// CanSignIn reports whether the account may authenticate.
func (u *User) CanSignIn() bool { return u.status == StatusActive }

// Suspend blocks the account from signing in.
func (u *User) Suspend(now time.Time) {
	u.status = StatusSuspended
	u.updatedAt = now.UTC()
}

// Reinstate lifts a suspension or reopens a closed account.
func (u *User) Reinstate(now time.Time) {
	u.status = StatusActive
	u.updatedAt = now.UTC()
}
