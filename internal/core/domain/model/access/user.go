package access

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"tracking/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User bypassed its constructors.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrSuperUserIsImmutable is returned when grants of a super user are edited.
	ErrSuperUserIsImmutable = errs.NewValueIsInvalidErrorWithCause("user",
		errors.New("super user permissions and channels cannot be modified"))
)

// User is a staff member who signed in through the identity provider.
type User struct {
	id          int64
	email       string
	name        string
	role        Role
	permissions []Permission
	channels    []string

	isConstructed bool
}

// NewUser registers a first-time sign-in. ID is assigned on persistence.
func NewUser(email, name string, role Role) (*User, error) {
	u := &User{name: strings.TrimSpace(name), isConstructed: true}

	if err := errors.Join(u.setEmail(email), u.setRole(role)); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a user from persistence.
func RestoreUser(id int64, email, name string, role Role, permissions []Permission, channels []string) (*User, error) {
	u, err := NewUser(email, name, role)
	if err != nil {
		return nil, err
	}
	u.id = id
	u.permissions = permissions
	u.channels = channels
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() int64 { return u.id }

func (u *User) Email() string { return u.email }

func (u *User) Name() string { return u.name }

func (u *User) Role() Role { return u.role }

func (u *User) IsSuper() bool { return u.role == RoleSuper }

// Permissions returns the explicitly granted permissions.
func (u *User) Permissions() []Permission { return slices.Clone(u.permissions) }

// Channels returns the explicitly allowed channels.
func (u *User) Channels() []string { return slices.Clone(u.channels) }

// AssignID is called by the repository once the row exists.
func (u *User) AssignID(id int64) { u.id = id }

// HasPermission reports whether the user may perform an action.
func (u *User) HasPermission(p Permission) bool {
	return u.IsSuper() || slices.Contains(u.permissions, p)
}

// Require returns a ForbiddenError unless the user holds p.
func (u *User) Require(p Permission) error {
	if !u.HasPermission(p) {
		return errs.NewForbiddenError(string(p))
	}
	return nil
}

// RequireSuper returns a ForbiddenError unless the user is super.
func (u *User) RequireSuper() error {
	if !u.IsSuper() {
		return errs.NewForbiddenError("super user only")
	}
	return nil
}

// CanSee reports whether orders of the channel are visible to the user.
func (u *User) CanSee(channel string) bool {
	return u.IsSuper() || slices.Contains(u.channels, channel)
}

// GrantPermissions replaces the user's permissions.
func (u *User) GrantPermissions(permissions []Permission) error {
	if u.IsSuper() {
		return ErrSuperUserIsImmutable
	}
	u.permissions = slices.Clone(permissions)
	return nil
}

// AllowChannels replaces the user's visible channels.
func (u *User) AllowChannels(channels []string) error {
	if u.IsSuper() {
		return ErrSuperUserIsImmutable
	}
	u.channels = slices.Clone(channels)
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q has no domain", email))
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	r, err := ParseRole(string(role))
	if err != nil {
		return err
	}
	u.role = r
	return nil
}
