package dto

import "github.com/academiahq/academia/internal/app/models"

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfile is the profile echo returned on login and from /auth/me.
type UserProfile struct {
	ID           int64           `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Role         models.RoleType `json:"role"`
	DepartmentID *int64          `json:"department_id"`
	CourseID     *int64          `json:"course_id"`
}

// LoginResponse wraps the matched profile together with the issued tokens.
type LoginResponse struct {
	User             UserProfile `json:"user"`
	AccessToken      string      `json:"access_token"`
	RefreshToken     string      `json:"refresh_token"`
	ExpiresIn        int         `json:"expires_in"`
	RefreshExpiresIn int         `json:"refresh_expires_in"`
}

// RefreshRequest carries a refresh token to be exchanged for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// NewUserProfile maps a user row to its profile echo.
func NewUserProfile(u *models.User) UserProfile {
	return UserProfile{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		CourseID:     u.CourseID,
	}
}
