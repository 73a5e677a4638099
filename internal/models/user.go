package models

// Company holds the employer info attached to a user
type Company struct {
	Title      string `json:"title"`
	Department string `json:"department"`
}

// User represents one agent as returned by the remote service
type User struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Image     string  `json:"image"`
	Company   Company `json:"company"`
}

// FullName returns the display name used in agent listings
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
