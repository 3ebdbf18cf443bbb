package dto

import (
	"posada/internal/domains/user/model"
	"posada/shared"
	"posada/shared/constant"
	gDto "posada/shared/dto"
	gModel "posada/shared/model"
	"posada/shared/timezone"

	"github.com/google/uuid"
)

// CreateAllowedFields is the allow list for user creation. The password is
// extracted for hashing and never stored as provided.
var CreateAllowedFields = []string{
	"email",
	"password",
	"firstName",
	"lastName",
	"role",
}

// NewUserModel builds the insert model from an extracted creation payload and
// the bcrypt hash of its password.
func NewUserModel(payload map[string]any, passwordHash string) model.User {
	now := timezone.Now()

	return model.User{
		ID:           uuid.NewString(),
		Email:        asString(payload["email"]),
		PasswordHash: passwordHash,
		FirstName:    asString(payload["firstName"]),
		LastName:     asString(payload["lastName"]),
		Role:         asString(payload["role"]),
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.FirstName = mod.FirstName
	r.LastName = mod.LastName
	r.Role = mod.Role
	r.IsActive = mod.IsActive
	r.Metadata.FromModel(mod.Metadata)

	if mod.LastLoginAt != nil {
		formatted := timezone.Format(*mod.LastLoginAt, constant.DateFormat)
		r.LastLoginAt = &formatted
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

func asString(value any) string {
	str, _ := value.(string)

	return str
}
