package model

import "time"

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleRecruiter UserRole = "recruiter" // Can post, list, and delete own jobs
	UserRoleJobseeker UserRole = "jobseeker" // Can browse jobs
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == UserRoleRecruiter || r == UserRoleJobseeker
}

// User represents a user account
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"` // Never expose password hash
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the user's public representation for embedding in
// other resources (e.g. the poster of a job listing).
func (u *User) Public() *UserPublic {
	return &UserPublic{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserPublic is the public name/email view of a user
type UserPublic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
