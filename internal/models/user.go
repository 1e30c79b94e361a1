package models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Identity is the authenticated caller as issued by Supabase Auth.
// It is passed explicitly into every workflow call.
type Identity struct {
	UserID   string   `json:"id"` // uuid, the token subject
	Email    string   `json:"email"`
	FullName string   `json:"full_name"` // user_metadata.full_name
	Role     UserRole `json:"role"`
}
