package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Identity is the authenticated principal attached to a request by the Auth
// middleware.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// CanMutate is the single ownership policy shared by every controller:
// a mutation is permitted iff the requester owns the resource, or the
// requester is an admin and the entity allows the admin override.
//
// Post update/delete and comment delete allow the override; comment update
// and file delete are strictly owner-only.
func CanMutate(id Identity, ownerID string, adminOverride bool) bool {
	if id.UserID != "" && id.UserID == ownerID {
		return true
	}
	return adminOverride && id.IsAdmin()
}
