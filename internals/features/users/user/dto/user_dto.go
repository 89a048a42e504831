package dto

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/users/model"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

var validate = validator.New()

/* =========================================================
   LIST
   ========================================================= */

var ListSchema = querykit.Schema{
	SortableFields: []string{"name", "email", "created_at", "updated_at", "deleted_at"},
	Filters: []querykit.FilterField{
		{Name: "role", Kind: querykit.FilterEnum, Enum: constants.AllRoles},
	},
	Searchable: true,
	Relations:  nil,
}

var QueryConfig = querykit.Config{
	SearchableFields: []string{"name", "email"},
	FilterableFields: []string{"role"},
	HasSoftDelete:    true,
	OmitFields:       []string{"password"},
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=4"`
	Email string `json:"email" validate:"required,email"`

	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`

	Role string `json:"role" validate:"required"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
}

func (r *CreateUserRequest) Validate() error {
	r.Normalize()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !passwordStrongEnough(r.Password) {
		return helper.NewFieldError(
			"Password must be at least 8 characters long, contain at least 1 uppercase letter, and 1 special character.",
			"password",
		)
	}
	// SUPER_ADMIN hanya lahir dari seeder, tidak lewat endpoint ini.
	if !constants.IsAssignableRole(r.Role) {
		return helper.NewFieldError(
			"Role must be one of: "+constants.JoinAllowed(constants.AssignableRoles)+".",
			"role",
		)
	}
	return nil
}

func (r CreateUserRequest) ToModel() model.UserModel {
	return model.UserModel{
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
	}
}

// passwordStrongEnough: minimal 8 karakter, 1 huruf kapital, dan
// 1 karakter non-alfanumerik.
func passwordStrongEnough(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}

/* =========================================================
   UPDATE — password tidak bisa diganti lewat endpoint ini
   ========================================================= */

type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=4"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"`
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Role == nil
}

func (r *UpdateUserRequest) Validate() error {
	if r.IsEmpty() {
		return helper.BadRequest("At least one field must be provided to perform an update.")
	}
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Role != nil && !constants.IsAssignableRole(strings.ToUpper(strings.TrimSpace(*r.Role))) {
		return helper.NewFieldError(
			"Role must be one of: "+constants.JoinAllowed(constants.AssignableRoles)+".",
			"role",
		)
	}
	return nil
}

func (r UpdateUserRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		updates["role"] = strings.ToUpper(strings.TrimSpace(*r.Role))
	}
	return updates
}
