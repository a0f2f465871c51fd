package domain

// UserRole controls what a signed-in user may see and change.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleManager    UserRole = "MANAGER"
	RoleArtistView UserRole = "ARTIST_VIEW"
)

// User represents a staff member or an artist-side viewer of the dashboard.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"` // bcrypt hash, never serialized
	Role         UserRole `json:"role"`
	AuditFields
}
