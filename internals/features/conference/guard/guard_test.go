package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confku_backend/internals/constants"
	helper "confku_backend/internals/helpers"
)

func TestCanManage(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		confType string
		want     bool
	}{
		{"super admin icicyta", constants.RoleSuperAdmin, constants.ConferenceICICYTA, true},
		{"super admin icodsa", constants.RoleSuperAdmin, constants.ConferenceICODSA, true},
		{"icicyta admin own conference", constants.RoleAdminICICYTA, constants.ConferenceICICYTA, true},
		{"icicyta admin other conference", constants.RoleAdminICICYTA, constants.ConferenceICODSA, false},
		{"icodsa admin own conference", constants.RoleAdminICODSA, constants.ConferenceICODSA, true},
		{"icodsa admin other conference", constants.RoleAdminICODSA, constants.ConferenceICICYTA, false},
		{"unknown role", "GUEST", constants.ConferenceICICYTA, false},
		{"empty role", "", constants.ConferenceICODSA, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanManage(tc.role, tc.confType))
		})
	}
}

func TestEnsureCanManageMessage(t *testing.T) {
	err := EnsureCanManage(constants.RoleAdminICODSA, constants.ConferenceICICYTA, "delete", "room")
	require.Error(t, err)

	var apiErr *helper.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, "You are not allowed to delete room in this conference!", apiErr.Message)
}

func TestEnsureCanManageAllows(t *testing.T) {
	assert.NoError(t, EnsureCanManage(constants.RoleSuperAdmin, constants.ConferenceICODSA, "update", "schedule"))
	assert.NoError(t, EnsureCanManage(constants.RoleAdminICICYTA, constants.ConferenceICICYTA, "create", "track session"))
}

func TestEnsureCanManageTypeMessage(t *testing.T) {
	err := EnsureCanManageType(constants.RoleAdminICICYTA, constants.ConferenceICODSA, "create")
	require.Error(t, err)

	var apiErr *helper.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "You are not allowed to create this type of conference schedule!", apiErr.Message)
}
