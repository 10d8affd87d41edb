package domain

import (
	interfaces "preptogether/internal/domain/interfaces"
	types "preptogether/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Role                = types.Role
	Profession          = types.Profession
	Route               = types.Route
	RegistrationRequest = types.RegistrationRequest
	RegistrationResult  = types.RegistrationResult
	Profile             = types.Profile
	AccountProfile      = types.AccountProfile
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	APIClient    = interfaces.APIClient
	TokenStore   = interfaces.TokenStore
	AccountStore = interfaces.AccountStore
	Navigator    = interfaces.Navigator
)

// Constants re-exported from the types subpackage.
const (
	RoleInterviewer = types.RoleInterviewer
	RoleJobSeeker   = types.RoleJobSeeker

	RouteHome     = types.RouteHome
	RouteRegister = types.RouteRegister
	RouteLogin    = types.RouteLogin
	RouteProfile  = types.RouteProfile
)

// Roles returns the supported roles in display order.
func Roles() []Role { return types.Roles() }
