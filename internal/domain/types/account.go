package types

// AccountProfile remembers the last e-mail used to log in against a server.
type AccountProfile struct {
	ServerURL string `json:"server_url"`
	Email     string `json:"email"`
}
