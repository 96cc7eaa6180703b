package models

import "github.com/google/uuid"

// GlobalAdminRole is the synthetic role name attached to memberships granted
// through the global-admin bypass. It is not a stored Role row.
const GlobalAdminRole = "GlobalAdmin"

// GroupMembership is one entry of a user's effective membership set: the
// group, and the role the user holds in it. Role is either the name of the
// assigned Role row or the GlobalAdminRole sentinel.
type GroupMembership struct {
	GroupId   uuid.UUID
	GroupName string
	Role      string
}

// GroupMember is one entry of a group's effective member set.
type GroupMember struct {
	UserId   uuid.UUID
	Username string
	Email    string
	Role     string
}
