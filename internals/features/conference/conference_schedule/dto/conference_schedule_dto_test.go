package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "confku_backend/internals/helpers"
)

func boolPtr(b bool) *bool { return &b }

func validCreate() CreateConferenceScheduleRequest {
	return CreateConferenceScheduleRequest{
		Name:               "ICICyTA 2024 Conference Program",
		Description:        "17th - 19th December 2024 (Hybrid)",
		Year:               "2024",
		StartDate:          "2024-12-17",
		EndDate:            "2024-12-19",
		Type:               "ICICYTA",
		IsActive:           boolPtr(true),
		ContactEmail:       "icicyta@telkomuniversity.ac.id",
		TimezoneIana:       "Asia/Makassar",
		OnsitePresentation: "THE EVITEL RESORT UBUD, BALI, INDONESIA",
		OnlinePresentation: "ZOOM MEETING ROOM",
	}
}

func TestCreateConferenceScheduleValid(t *testing.T) {
	req := validCreate()
	require.NoError(t, req.Validate())

	m := req.ToModel()
	assert.True(t, m.IsActive)
	assert.Equal(t, "2024", m.Year)
}

func TestCreateConferenceScheduleRejectsBadYear(t *testing.T) {
	req := validCreate()
	req.Year = "24"

	err := req.Validate()
	require.Error(t, err)

	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
}

func TestCreateConferenceScheduleRejectsUnknownType(t *testing.T) {
	req := validCreate()
	req.Type = "ICONIC"

	err := req.Validate()
	require.Error(t, err)
}

func TestCreateConferenceScheduleRequiresIsActive(t *testing.T) {
	req := validCreate()
	req.IsActive = nil

	err := req.Validate()
	require.Error(t, err)
}

func TestCreateConferenceScheduleEndDateMustBeAfterStart(t *testing.T) {
	req := validCreate()
	req.EndDate = "2024-12-17"

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "end_date", errs[0].Path)
	assert.Equal(t, "End date must be after the start date.", errs[0].Message)
}

func TestUpdateConferenceScheduleRequiresAtLeastOneField(t *testing.T) {
	req := UpdateConferenceScheduleRequest{}
	err := req.Validate()
	require.Error(t, err)

	var apiErr *helper.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "At least one field must be provided to perform an update.", apiErr.Message)
}

func TestUpdateConferenceScheduleDateOrderCheckedWhenBothSent(t *testing.T) {
	start := "2025-01-10"
	end := "2025-01-09"
	req := UpdateConferenceScheduleRequest{StartDate: &start, EndDate: &end}

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "end_date", errs[0].Path)
}

func TestUpdateConferenceScheduleToUpdatesOnlySentFields(t *testing.T) {
	year := "2025"
	req := UpdateConferenceScheduleRequest{Year: &year, IsActive: boolPtr(false)}
	require.NoError(t, req.Validate())

	updates := req.ToUpdates()
	assert.Len(t, updates, 2)
	assert.Equal(t, "2025", updates["year"])
	assert.Equal(t, false, updates["is_active"])
}
