package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "confku_backend/internals/helpers"
)

func validParallelCreate() CreateRoomRequest {
	identifier := "PR-1"
	start := "13:00"
	end := "16:00"
	return CreateRoomRequest{
		Name:       "Parallel Room 1",
		Identifier: &identifier,
		Type:       "PARALLEL",
		StartTime:  &start,
		EndTime:    &end,
		ScheduleID: uuid.New(),
		Track:      &TrackPayload{Name: "Track 1 - Data Science"},
	}
}

func TestCreateRoomParallelValid(t *testing.T) {
	req := validParallelCreate()
	assert.NoError(t, req.Validate())
}

func TestCreateRoomParallelRequiresTimesAndTrack(t *testing.T) {
	req := validParallelCreate()
	req.StartTime = nil
	req.EndTime = nil
	req.Track = nil

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 3)
	assert.Equal(t, "start_time", errs[0].Path)
	assert.Equal(t, "end_time", errs[1].Path)
	assert.Equal(t, "track", errs[2].Path)
}

func TestCreateRoomMainForbidsTimesAndTrack(t *testing.T) {
	start := "09:00"
	req := CreateRoomRequest{
		Name:       "Main Room",
		Type:       "MAIN",
		StartTime:  &start,
		ScheduleID: uuid.New(),
		Track:      &TrackPayload{Name: "Track 1"},
	}

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	paths := make([]string, 0, len(errs))
	for _, fe := range errs {
		paths = append(paths, fe.Path)
	}
	assert.Contains(t, paths, "start_time")
	assert.Contains(t, paths, "track")
}

func TestCreateRoomMainValid(t *testing.T) {
	req := CreateRoomRequest{
		Name:       "Main Room",
		Type:       "MAIN",
		ScheduleID: uuid.New(),
	}
	assert.NoError(t, req.Validate())
}

func TestCreateRoomNormalizeEmptyStringsToNil(t *testing.T) {
	empty := ""
	req := CreateRoomRequest{
		Name:       "Main Room",
		Type:       "MAIN",
		Identifier: &empty,
		ScheduleID: uuid.New(),
	}
	require.NoError(t, req.Validate())
	assert.Nil(t, req.Identifier)
}

func TestUpdateRoomTypeToParallelRequiresTrack(t *testing.T) {
	typ := "PARALLEL"
	req := UpdateRoomRequest{Type: &typ}

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "track", errs[0].Path)
}

func TestUpdateRoomTypeToMainForbidsTrack(t *testing.T) {
	typ := "MAIN"
	req := UpdateRoomRequest{Type: &typ, Track: &TrackPayload{Name: "Track 1"}}

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Track object is not allowed when setting type to MAIN.", errs[0].Message)
}

/* =========================================================
   adv_search parsing
   ========================================================= */

func parseAdv(t *testing.T, target string) (*AdvSearch, helper.FieldErrors) {
	t.Helper()

	var (
		adv  *AdvSearch
		errs helper.FieldErrors
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		adv, errs = ParseAdvSearch(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return adv, errs
}

func TestParseAdvSearchAbsent(t *testing.T) {
	adv, errs := parseAdv(t, "/")
	require.Nil(t, errs)
	assert.Nil(t, adv)
}

func TestParseAdvSearchByConferenceID(t *testing.T) {
	id := uuid.New()
	adv, errs := parseAdv(t, "/?adv_search[conference_schedule_id]="+id.String())

	require.Nil(t, errs)
	require.NotNil(t, adv)
	assert.Equal(t, id, *adv.ConferenceScheduleID)
}

func TestParseAdvSearchByAttributes(t *testing.T) {
	adv, errs := parseAdv(t,
		"/?adv_search[conference_schedule][year]=2024&adv_search[conference_schedule][type]=icicyta&adv_search[conference_schedule][is_active]=true")

	require.Nil(t, errs)
	require.NotNil(t, adv)
	assert.Equal(t, "2024", *adv.ConferenceYear)
	assert.Equal(t, "ICICYTA", *adv.ConferenceType)
	assert.True(t, *adv.ConferenceIsActive)
}

func TestParseAdvSearchMutuallyExclusive(t *testing.T) {
	id := uuid.New()
	_, errs := parseAdv(t,
		"/?adv_search[conference_schedule_id]="+id.String()+"&adv_search[conference_schedule][year]=2024")

	require.NotNil(t, errs)
	assert.Equal(t, "adv_search", errs[0].Path)
}

func TestParseAdvSearchBadYear(t *testing.T) {
	_, errs := parseAdv(t, "/?adv_search[conference_schedule][year]=24")

	require.NotNil(t, errs)
	assert.Equal(t, "Year must be 4 digits (e.g., 2025).", errs[0].Message)
}
