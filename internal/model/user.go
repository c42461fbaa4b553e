package model

// Role is a user's role. Only RoleAdmin carries extra permissions; any other
// value is stored as given.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// User represents a registered account.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string `json:"name" gorm:"size:255"`
	Role         Role   `json:"role" gorm:"size:50;not null;default:'student'"`
	PasswordHash string `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
