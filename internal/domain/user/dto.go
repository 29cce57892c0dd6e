package user

import "github.com/rudratic/hr-backend-go/internal/pkg/validator"

type UpdateProfileRequest struct {
	UserID      string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if len(*r.Name) < 2 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must be at least 2 characters",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProfileResponse is the API shape of a user, password hash excluded.
type ProfileResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Status      string  `json:"status"`
	Dashboard   string  `json:"dashboard"`
	CreatedAt   string  `json:"created_at"`
}

// ToProfileResponse strips credentials and resolves the landing route.
func ToProfileResponse(u User) ProfileResponse {
	return ProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role()),
		Phone:       u.Phone,
		Department:  u.Department,
		Designation: u.Designation,
		AvatarURL:   u.AvatarURL,
		Status:      string(u.Status),
		Dashboard:   DashboardByRole(u.Role()),
		CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type ListUsersFilter struct {
	Status     *string
	Department *string
	Search     *string
	Page       int
	Limit      int
}
