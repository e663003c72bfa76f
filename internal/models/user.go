package models

// User is the session record for an authenticated visitor. It is the only
// durable piece of state in the system.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
