package entities

// Role is the closed set of actor roles known to the platform.
//
// Authorization happens before the use cases are invoked: handlers receive a
// pre-authorized actor id for one of these roles and pass it down explicitly.
// The core never reads ambient request state.

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleProvider Role = "provider"
	RoleCustomer Role = "customer"
)
