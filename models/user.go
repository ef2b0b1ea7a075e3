package models

import "time"

// User is a mock-auth session identity. There is no password storage; the
// auth layer fabricates users on sign-in for demo purposes.
type User struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	Role        string    `json:"role"` // "user" or "guest"
	CreatedAt   time.Time `json:"createdAt"`
}
