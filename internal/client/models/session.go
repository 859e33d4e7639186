// Package models defines the client-side data model: the persisted
// session, the server-owned loan and document records, and the form
// inputs with their validation rules.
package models

// Roles recognized by the client. Anything else is treated as a plain
// user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the account record returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Session is the tuple persisted across restarts: bearer token, current
// user and role. The three fields are always written and removed
// together; a partial session is treated as no session.
type Session struct {
	Token string
	User  *User
	Role  string
}

// Authenticated reports whether the session carries both a token and a
// user record.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}
