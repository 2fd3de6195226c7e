// Package models defines the core data structures for users and registration requests.
package models

// NewUser is an unvalidated registration request.
type NewUser struct {
	// FullName is the display name of the user.
	FullName string `json:"fullName"`
	// Login is the unique name the user registers under.
	Login string `json:"login"`
	// Password is the plain password submitted for registration.
	Password string `json:"password"`
}

// User represents a registered application user.
type User struct {
	// FullName is the display name of the user.
	FullName string `json:"fullName"`
	// Login is the unique identifier of the user.
	Login string `json:"login"`
	// Password is stored as submitted and never serialized.
	Password string `json:"-"`
}

// ToUser builds the User record persisted after successful validation.
func (n NewUser) ToUser() User {
	return User{
		FullName: n.FullName,
		Login:    n.Login,
		Password: n.Password,
	}
}
