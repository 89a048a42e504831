package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "confku_backend/internals/helpers"
)

func validCreateUser() CreateUserRequest {
	return CreateUserRequest{
		Name:                 "Admin ICODSA",
		Email:                "Admin@ICODSA.org",
		Password:             "Sup3rSecret!",
		PasswordConfirmation: "Sup3rSecret!",
		Role:                 "ADMIN_ICODSA",
	}
}

func TestCreateUserValidAndNormalized(t *testing.T) {
	req := validCreateUser()
	require.NoError(t, req.Validate())
	assert.Equal(t, "admin@icodsa.org", req.Email)
}

func TestCreateUserConfirmationMustMatch(t *testing.T) {
	req := validCreateUser()
	req.PasswordConfirmation = "Different1!"

	err := req.Validate()
	require.Error(t, err)

	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
}

func TestCreateUserWeakPasswords(t *testing.T) {
	cases := []struct {
		name     string
		password string
	}{
		{"no uppercase", "sup3rsecret!"},
		{"no special char", "Sup3rSecret1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateUser()
			req.Password = tc.password
			req.PasswordConfirmation = tc.password

			err := req.Validate()
			require.Error(t, err)

			var errs helper.FieldErrors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, "password", errs[0].Path)
		})
	}
}

func TestCreateUserRoleMustBeAssignable(t *testing.T) {
	for _, role := range []string{"SUPER_ADMIN", "AUDITOR"} {
		req := validCreateUser()
		req.Role = role

		err := req.Validate()
		require.Error(t, err)

		var errs helper.FieldErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "role", errs[0].Path)
	}
}

func TestUpdateUserRoleMustBeAssignable(t *testing.T) {
	role := "SUPER_ADMIN"
	req := UpdateUserRequest{Role: &role}

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "role", errs[0].Path)
}

func TestCreateUserToModelOmitsPassword(t *testing.T) {
	req := validCreateUser()
	require.NoError(t, req.Validate())

	m := req.ToModel()
	assert.Empty(t, m.Password)
	assert.Equal(t, "ADMIN_ICODSA", m.Role)
}

func TestUpdateUserRequiresAtLeastOneField(t *testing.T) {
	req := UpdateUserRequest{}
	err := req.Validate()
	require.Error(t, err)

	var apiErr *helper.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestUpdateUserToUpdatesNormalizes(t *testing.T) {
	email := "New@Email.org"
	req := UpdateUserRequest{Email: &email}
	require.NoError(t, req.Validate())

	updates := req.ToUpdates()
	assert.Equal(t, "new@email.org", updates["email"])
}
