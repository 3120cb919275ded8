package user

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the public subset of a user embedded in attendance and
// task payloads.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}
