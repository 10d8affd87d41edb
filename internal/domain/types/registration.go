package types

// RegistrationRequest is the JSON body posted to /register.
type RegistrationRequest struct {
	Username     string     `json:"username"`
	Password     string     `json:"password"`
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	Profession   Profession `json:"profession"`
	Technologies []string   `json:"technologies"`
}

// RegistrationResult is the success body returned by /register.
type RegistrationResult struct {
	Message string `json:"message"`
}
