package utils

import (
	"vidtube.com/pkg/errno"
)

// IsOwner compares the acting user against a resource owner by identifier
// value. Every mutation goes through this predicate before touching the row.
func IsOwner(userId, ownerId int64) bool {
	return userId > 0 && userId == ownerId
}

func RequireOwner(userId, ownerId int64, resource string) error {
	if !IsOwner(userId, ownerId) {
		return errno.ForbiddenErr.WithMessage("Only the " + resource + " owner may perform this action")
	}
	return nil
}
