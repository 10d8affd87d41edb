package types

// Profile is the user record returned by /profile.
type Profile struct {
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	Profession   Profession `json:"profession"`
	Technologies []string   `json:"technologies"`
}
