package types

// Role is the kind of account a user registers as.
type Role string

// Supported roles.
const (
	RoleInterviewer Role = "interviewer"
	RoleJobSeeker   Role = "jobseeker"
)

// String returns the string form of the role.
func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	return r == RoleInterviewer || r == RoleJobSeeker
}

// Roles returns the supported roles in display order.
func Roles() []Role { return []Role{RoleInterviewer, RoleJobSeeker} }

// Profession names an entry of the profession catalog.
type Profession string

// String returns the string form of the profession.
func (p Profession) String() string { return string(p) }
