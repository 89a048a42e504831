// file: internals/features/conference/guard/guard.go
//
// Evaluator otorisasi cascade: keputusan policy murni, terpisah dari
// resolusi owning-conference yang jadi tanggung jawab tiap service.
package guard

import (
	"fmt"

	"github.com/google/uuid"

	"confku_backend/internals/constants"
	helper "confku_backend/internals/helpers"
)

// Actor: identitas user dari JWT (diisi auth middleware).
type Actor struct {
	ID   uuid.UUID
	Role string
}

// CanManage: SUPER_ADMIN selalu boleh; admin per-conference ditolak
// saat conference milik tipe sebelah.
func CanManage(role, conferenceType string) bool {
	switch role {
	case constants.RoleSuperAdmin:
		return true
	case constants.RoleAdminICICYTA:
		return conferenceType != constants.ConferenceICODSA
	case constants.RoleAdminICODSA:
		return conferenceType != constants.ConferenceICICYTA
	default:
		return false
	}
}

// EnsureCanManage: penolakan harus gagal keras dengan pesan yang
// menyebut operasi dan jenis entity-nya, tidak pernah memfilter diam-diam.
func EnsureCanManage(role, conferenceType, action, entity string) error {
	if CanManage(role, conferenceType) {
		return nil
	}
	return helper.Forbidden(
		fmt.Sprintf("You are not allowed to %s %s in this conference!", action, entity),
	)
}

// EnsureCanManageType: varian untuk operasi pada conference schedule
// itu sendiri (create/update/delete dengan tipe target).
func EnsureCanManageType(role, conferenceType, action string) error {
	if CanManage(role, conferenceType) {
		return nil
	}
	return helper.Forbidden(
		fmt.Sprintf("You are not allowed to %s this type of conference schedule!", action),
	)
}
