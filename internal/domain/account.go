package domain

import "time"

// Account is a full local account record, stored under the accounts namespace.
type Account struct {
	ID string `json:"id"`

	// Email is unique across accounts.
	Email string `json:"email"`

	// PasswordHash is a bcrypt hash. The shell never stores the plaintext.
	PasswordHash string `json:"passwordHash"`

	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is the reduced session projection of an Account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Project reduces an account to its session user view.
func (a *Account) Project() User {
	return User{ID: a.ID, Email: a.Email, Name: a.Name}
}
