package types

import (
	"errors"
	"fmt"
)

// Role is the authentication state of the acting subject. Roles are not
// hierarchical: each request is evaluated under exactly one role.
type Role string

const (
	// RoleAnonymous is an unauthenticated request.
	RoleAnonymous Role = "anonymous"
	// RoleAuthenticated is a request carrying a verified subject id.
	RoleAuthenticated Role = "authenticated"
	// RoleService is the trusted backend role. It bypasses row policies
	// but not table grants.
	RoleService Role = "service"
)

// Action is a table operation subject to authorization.
type Action string

const (
	ActionSelect Action = "select"
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Subject is the acting identity of a request: who is asking, under
// which role. The zero value is not valid; use Anonymous or Service, or
// construct an authenticated subject with both fields set.
type Subject struct {
	ID   string `json:"id,omitempty"`
	Role Role   `json:"role"`
}

// ErrInvalidSubject reports a malformed subject.
var ErrInvalidSubject = errors.New("invalid subject")

// Anonymous returns the unauthenticated subject.
func Anonymous() Subject {
	return Subject{Role: RoleAnonymous}
}

// Service returns the trusted service subject.
func Service() Subject {
	return Subject{Role: RoleService}
}

// Validate checks that the subject is well-formed: a known role, and a
// subject id if and only if the role is authenticated.
func (s Subject) Validate() error {
	switch s.Role {
	case RoleAnonymous, RoleService:
		if s.ID != "" {
			return fmt.Errorf("%w: role %s must not carry a subject id", ErrInvalidSubject, s.Role)
		}
		return nil
	case RoleAuthenticated:
		if s.ID == "" {
			return fmt.Errorf("%w: authenticated subject needs an id", ErrInvalidSubject)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidSubject, s.Role)
	}
}
