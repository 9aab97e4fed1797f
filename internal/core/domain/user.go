package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSpecialist = "specialist"
	RoleClient     = "client"
)

// Permission names granted to users by role.
const (
	PermissionAll               = "all"
	PermissionClientManagement  = "client_management"
	PermissionDisputeManagement = "dispute_management"
	PermissionReports           = "reports"
	PermissionClientPortal      = "client_portal"
)

// User models an authenticated actor in the system. Role is fixed at
// creation; there is no role-change operation.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	PasswordHash string    `json:"-"`
	Permissions  []string  `json:"permissions"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSpecialist || role == RoleClient
}

// PermissionsForRole derives the permission set from a role. The mapping is
// pure: permissions are never stored, always derived.
func PermissionsForRole(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{PermissionAll}
	case RoleSpecialist:
		return []string{PermissionClientManagement, PermissionDisputeManagement, PermissionReports}
	case RoleClient:
		return []string{PermissionClientPortal}
	default:
		return nil
	}
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
