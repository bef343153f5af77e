package access

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
)

// Role is the coarse user classification.
type Role string

const (
	RoleNormal Role = "normal"
	RoleSuper  Role = "super"
)

// ParseRole accepts the persisted role names.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleNormal, RoleSuper:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// RoleForEmail grants super to the configured administrator address.
func RoleForEmail(email, superEmail string) Role {
	if superEmail != "" && strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(superEmail)) {
		return RoleSuper
	}
	return RoleNormal
}
