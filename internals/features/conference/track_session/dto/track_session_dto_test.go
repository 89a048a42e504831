package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "confku_backend/internals/helpers"
)

func validCreate() CreateTrackSessionRequest {
	return CreateTrackSessionRequest{
		PaperID:   "1570100001",
		Title:     "Sentiment Analysis on Indonesian Social Media",
		Authors:   "A. Pratama; B. Wijaya",
		Mode:      "online",
		StartTime: "13:00",
		EndTime:   "13:20",
		TrackID:   uuid.New(),
	}
}

func TestCreateTrackSessionValidAndNormalized(t *testing.T) {
	req := validCreate()
	require.NoError(t, req.Validate())
	assert.Equal(t, "ONLINE", req.Mode)
}

func TestCreateTrackSessionRejectsBadTimes(t *testing.T) {
	req := validCreate()
	req.StartTime = "1pm"
	req.EndTime = "24:00"

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, "start_time", errs[0].Path)
	assert.Equal(t, "end_time", errs[1].Path)
}

func TestCreateTrackSessionRejectsUnknownMode(t *testing.T) {
	req := validCreate()
	req.Mode = "HYBRID"

	err := req.Validate()
	require.Error(t, err)
}

func TestUpdateTrackSessionRequiresAtLeastOneField(t *testing.T) {
	req := UpdateTrackSessionRequest{}
	err := req.Validate()
	require.Error(t, err)

	var apiErr *helper.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestUpdateTrackSessionTimeFormat(t *testing.T) {
	bad := "9:5"
	req := UpdateTrackSessionRequest{StartTime: &bad}

	err := req.Validate()
	require.Error(t, err)

	var errs helper.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "start_time", errs[0].Path)
}
