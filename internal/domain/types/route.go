package types

// Route identifies a client view.
type Route string

// Views the client can navigate to.
const (
	RouteHome     Route = "/"
	RouteRegister Route = "/register"
	RouteLogin    Route = "/login"
	RouteProfile  Route = "/profile"
)

// String returns the string form of the route.
func (r Route) String() string { return string(r) }
