package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/model"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

var validate = validator.New()

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

const dateLayout = "2006-01-02"

/* =========================================================
   LIST
   ========================================================= */

var ListSchema = querykit.Schema{
	SortableFields: []string{"date", "start_time", "type", "created_at"},
	Filters: []querykit.FilterField{
		{Name: "type", Kind: querykit.FilterEnum, Enum: constants.ScheduleTypes},
		{Name: "conference_schedule_id", Kind: querykit.FilterUUID},
	},
	Searchable: false,
	Relations:  []string{"rooms"},
}

var QueryConfig = querykit.Config{
	SearchableFields: nil,
	FilterableFields: []string{"type", "conference_schedule_id"},
	HasSoftDelete:    false,
	Relations: map[string][]string{
		"rooms": {"Rooms.Track.TrackSessions"},
	},
}

/* =========================================================
   CREATE — start/end time dan notes mengikuti varian type
   (TALK/BREAK butuh jam, ONE_DAY_ACTIVITY butuh notes tanpa jam)
   ========================================================= */

type CreateScheduleRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Type string `json:"type" validate:"required,oneof=TALK BREAK ONE_DAY_ACTIVITY"`

	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Notes     *string `json:"notes"`

	ConferenceScheduleID uuid.UUID `json:"conference_schedule_id" validate:"required"`
}

func (r *CreateScheduleRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	var errs helper.FieldErrors
	validateScheduleVariant(&errs, r.Type, r.StartTime, r.EndTime, r.Notes, true)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateScheduleRequest) ToModel() model.ScheduleModel {
	date, _ := time.Parse(dateLayout, r.Date)
	m := model.ScheduleModel{
		Date:                 datatypes.Date(date),
		Type:                 r.Type,
		Notes:                r.Notes,
		ConferenceScheduleID: r.ConferenceScheduleID,
	}
	if r.Type != constants.ScheduleOneDayActivity {
		m.StartTime = r.StartTime
		m.EndTime = r.EndTime
	}
	return m
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateScheduleRequest struct {
	Date *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Type *string `json:"type" validate:"omitempty,oneof=TALK BREAK ONE_DAY_ACTIVITY"`

	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Notes     *string `json:"notes"`

	ConferenceScheduleID *uuid.UUID `json:"conference_schedule_id"`
}

func (r *UpdateScheduleRequest) IsEmpty() bool {
	return r.Date == nil && r.Type == nil && r.StartTime == nil &&
		r.EndTime == nil && r.Notes == nil && r.ConferenceScheduleID == nil
}

func (r *UpdateScheduleRequest) Validate() error {
	if r.IsEmpty() {
		return helper.BadRequest("At least one field must be provided to perform an update.")
	}
	if err := validate.Struct(r); err != nil {
		return err
	}
	var errs helper.FieldErrors
	if r.Type != nil {
		validateScheduleVariant(&errs, *r.Type, r.StartTime, r.EndTime, r.Notes, false)
	} else {
		validateTimeFormat(&errs, r.StartTime, "start_time")
		validateTimeFormat(&errs, r.EndTime, "end_time")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpdateScheduleRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Date != nil {
		date, _ := time.Parse(dateLayout, *r.Date)
		updates["date"] = datatypes.Date(date)
	}
	if r.Type != nil {
		updates["type"] = *r.Type
		if *r.Type == constants.ScheduleOneDayActivity {
			updates["start_time"] = nil
			updates["end_time"] = nil
		}
	}
	if r.StartTime != nil {
		updates["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		updates["end_time"] = *r.EndTime
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	if r.ConferenceScheduleID != nil {
		updates["conference_schedule_id"] = *r.ConferenceScheduleID
	}
	return updates
}

/* =========================================================
   Shared variant rules
   ========================================================= */

func validateScheduleVariant(errs *helper.FieldErrors, schedType string, start, end, notes *string, timesRequired bool) {
	if schedType == constants.ScheduleOneDayActivity {
		if hasValue(start) {
			errs.Add("Start time must be empty for ONE_DAY_ACTIVITY.", "start_time")
		}
		if hasValue(end) {
			errs.Add("End time must be empty for ONE_DAY_ACTIVITY.", "end_time")
		}
		if !hasValue(notes) {
			errs.Add("Notes are required for ONE_DAY_ACTIVITY.", "notes")
		}
		return
	}

	if timesRequired && !hasValue(start) {
		errs.Add("Start time is required.", "start_time")
	}
	if timesRequired && !hasValue(end) {
		errs.Add("End time is required.", "end_time")
	}
	validateTimeFormat(errs, start, "start_time")
	validateTimeFormat(errs, end, "end_time")
}

func validateTimeFormat(errs *helper.FieldErrors, value *string, path string) {
	if !hasValue(value) {
		return
	}
	if !timePattern.MatchString(*value) {
		label := "Start time"
		example := "09:30"
		if path == "end_time" {
			label = "End time"
			example = "17:00"
		}
		errs.Add(label+" must be in HH:mm format (e.g., "+example+").", path)
	}
}

func hasValue(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
