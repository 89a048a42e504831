package dto

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/model"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

var validate = validator.New()

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

/* =========================================================
   LIST
   ========================================================= */

var ListSchema = querykit.Schema{
	SortableFields: []string{"name", "identifier", "type", "start_time", "created_at"},
	Filters: []querykit.FilterField{
		{Name: "type", Kind: querykit.FilterEnum, Enum: constants.RoomTypes},
		{Name: "schedule_id", Kind: querykit.FilterUUID},
		{Name: "track_id", Kind: querykit.FilterUUID},
	},
	Searchable: true,
	Relations:  []string{"schedule", "track"},
}

var QueryConfig = querykit.Config{
	SearchableFields: []string{"name", "identifier", "description"},
	FilterableFields: []string{"type", "schedule_id", "track_id"},
	HasSoftDelete:    false,
	Relations: map[string][]string{
		"schedule": {"Schedule"},
		"track":    {"Track.TrackSessions"},
	},
}

// AdvSearch menyaring room lewat conference pemiliknya: langsung via
// conference_schedule_id, atau via atribut conference (year/type/
// is_active). Keduanya eksklusif satu sama lain.
type AdvSearch struct {
	ConferenceScheduleID *uuid.UUID

	ConferenceYear     *string
	ConferenceType     *string
	ConferenceIsActive *bool
}

func (a *AdvSearch) byAttributes() bool {
	return a.ConferenceYear != nil || a.ConferenceType != nil || a.ConferenceIsActive != nil
}

// ParseAdvSearch membaca adv_search[...] dari query string; nil saat
// tidak ada satupun key yang dikirim.
func ParseAdvSearch(c *fiber.Ctx) (*AdvSearch, helper.FieldErrors) {
	var errs helper.FieldErrors
	adv := AdvSearch{}

	if raw := strings.TrimSpace(c.Query("adv_search[conference_schedule_id]")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs.Add("conference_schedule_id must be a valid UUID.", "adv_search.conference_schedule_id")
		} else {
			adv.ConferenceScheduleID = &id
		}
	}

	if raw := strings.TrimSpace(c.Query("adv_search[conference_schedule][year]")); raw != "" {
		if len(raw) != 4 {
			errs.Add("Year must be 4 digits (e.g., 2025).", "adv_search.conference_schedule.year")
		} else if _, err := strconv.Atoi(raw); err != nil {
			errs.Add("Year must only contain numbers.", "adv_search.conference_schedule.year")
		} else {
			adv.ConferenceYear = &raw
		}
	}

	if raw := strings.ToUpper(strings.TrimSpace(c.Query("adv_search[conference_schedule][type]"))); raw != "" {
		if !constants.OneOf(raw, constants.ConferenceTypes) {
			errs.Add("Type must be one of: "+constants.JoinAllowed(constants.ConferenceTypes)+".", "adv_search.conference_schedule.type")
		} else {
			adv.ConferenceType = &raw
		}
	}

	if raw := strings.TrimSpace(c.Query("adv_search[conference_schedule][is_active]")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs.Add("is_active must be a boolean.", "adv_search.conference_schedule.is_active")
		} else {
			adv.ConferenceIsActive = &v
		}
	}

	if adv.ConferenceScheduleID != nil && adv.byAttributes() {
		errs.Add("conference_schedule_id and conference_schedule cannot be combined.", "adv_search")
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if adv.ConferenceScheduleID == nil && !adv.byAttributes() {
		return nil, nil
	}
	return &adv, nil
}

/* =========================================================
   CREATE — MAIN tanpa jam & tanpa track,
   PARALLEL wajib jam + payload track
   ========================================================= */

type TrackPayload struct {
	Name        string  `json:"name" validate:"required,min=3"`
	Description *string `json:"description"`
}

func (p TrackPayload) ToModel() model.TrackModel {
	return model.TrackModel{
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
	}
}

type CreateRoomRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Identifier  *string `json:"identifier"`
	Description *string `json:"description"`

	Type string `json:"type" validate:"required,oneof=MAIN PARALLEL"`

	OnlineMeetingURL *string `json:"online_meeting_url" validate:"omitempty,url"`

	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	ScheduleID uuid.UUID `json:"schedule_id" validate:"required"`

	Track *TrackPayload `json:"track"`
}

func (r *CreateRoomRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Type = strings.ToUpper(strings.TrimSpace(r.Type))
	r.Identifier = emptyToNil(r.Identifier)
	r.Description = emptyToNil(r.Description)
	r.OnlineMeetingURL = emptyToNil(r.OnlineMeetingURL)
	r.StartTime = emptyToNil(r.StartTime)
	r.EndTime = emptyToNil(r.EndTime)
}

func (r *CreateRoomRequest) Validate() error {
	r.Normalize()
	if err := validate.Struct(r); err != nil {
		return err
	}

	var errs helper.FieldErrors
	if r.Type == constants.RoomMain {
		if r.StartTime != nil {
			errs.Add("Start time must be empty for MAIN rooms.", "start_time")
		}
		if r.EndTime != nil {
			errs.Add("End time must be empty for MAIN rooms.", "end_time")
		}
		if r.Track != nil {
			errs.Add("Track object must not be included for MAIN rooms.", "track")
		}
	} else {
		if r.StartTime == nil {
			errs.Add("Start time is required.", "start_time")
		} else if !timePattern.MatchString(*r.StartTime) {
			errs.Add("Start time must be in HH:mm format (e.g., 09:30).", "start_time")
		}
		if r.EndTime == nil {
			errs.Add("End time is required.", "end_time")
		} else if !timePattern.MatchString(*r.EndTime) {
			errs.Add("End time must be in HH:mm format (e.g., 17:00).", "end_time")
		}
		if r.Track == nil {
			errs.Add("Track object is required for PARALLEL rooms.", "track")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateRoomRequest) ToModel() model.RoomModel {
	return model.RoomModel{
		Name:             r.Name,
		Identifier:       r.Identifier,
		Description:      r.Description,
		Type:             r.Type,
		OnlineMeetingURL: r.OnlineMeetingURL,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		ScheduleID:       r.ScheduleID,
	}
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateRoomRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=100"`
	Identifier  *string `json:"identifier"`
	Description *string `json:"description"`

	Type *string `json:"type" validate:"omitempty,oneof=MAIN PARALLEL"`

	OnlineMeetingURL *string `json:"online_meeting_url" validate:"omitempty,url"`

	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	ScheduleID *uuid.UUID `json:"schedule_id"`

	Track *TrackPayload `json:"track"`
}

func (r *UpdateRoomRequest) IsEmpty() bool {
	return r.Name == nil && r.Identifier == nil && r.Description == nil &&
		r.Type == nil && r.OnlineMeetingURL == nil && r.StartTime == nil &&
		r.EndTime == nil && r.ScheduleID == nil && r.Track == nil
}

func (r *UpdateRoomRequest) Validate() error {
	if r.IsEmpty() {
		return helper.BadRequest("At least one field must be provided to perform an update.")
	}
	if err := validate.Struct(r); err != nil {
		return err
	}

	var errs helper.FieldErrors
	if r.Type != nil {
		switch *r.Type {
		case constants.RoomMain:
			if r.Track != nil {
				errs.Add("Track object is not allowed when setting type to MAIN.", "track")
			}
		case constants.RoomParallel:
			if r.Track == nil {
				errs.Add("Track object is required when setting type to PARALLEL.", "track")
			}
		}
	}
	if r.StartTime != nil && !timePattern.MatchString(*r.StartTime) {
		errs.Add("Start time must be in HH:mm format (e.g., 09:30).", "start_time")
	}
	if r.EndTime != nil && !timePattern.MatchString(*r.EndTime) {
		errs.Add("End time must be in HH:mm format (e.g., 17:00).", "end_time")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpdateRoomRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Identifier != nil {
		updates["identifier"] = *r.Identifier
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Type != nil {
		updates["type"] = *r.Type
		if *r.Type == constants.RoomMain {
			updates["start_time"] = nil
			updates["end_time"] = nil
		}
	}
	if r.OnlineMeetingURL != nil {
		updates["online_meeting_url"] = *r.OnlineMeetingURL
	}
	if r.StartTime != nil {
		updates["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		updates["end_time"] = *r.EndTime
	}
	if r.ScheduleID != nil {
		updates["schedule_id"] = *r.ScheduleID
	}
	return updates
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
